package quikka

import (
	"bytes"
	"errors"
	"testing"
)

// keepByIndex applies the retention rule one byte at a time.
func keepByIndex(data []byte) []byte {
	out := []byte{}

	for i, b := range data {
		if (i/4)%2 == 0 {
			out = append(out, b)
		}
	}

	return out
}

func TestDoubleSpeedExample(t *testing.T) {
	w, err := Decode(buildWav(2, 44100, 16, []byte{1, 2, 3, 4, 5, 6, 7, 8}))
	if err != nil {
		t.Fatal(err)
	}

	if w.Header.Size != 44 {
		t.Fatalf("riff size=%d, want 44", w.Header.Size)
	}

	if err := w.DoubleSpeed(); err != nil {
		t.Fatal(err)
	}

	if w.Header.Size != 40 {
		t.Fatalf("riff size=%d, want 40", w.Header.Size)
	}

	if w.Data.Size != 4 || !bytes.Equal(w.Data.Data, []byte{1, 2, 3, 4}) {
		t.Fatalf("data size=%d data=%v, want 4 and [1 2 3 4]", w.Data.Size, w.Data.Data)
	}

	if err := w.Validate(); err != nil {
		t.Fatalf("validate after transform: %v", err)
	}
}

func TestDoubleSpeedLengths(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{4, 4},
		{5, 4},
		{7, 4},
		{8, 4},
		{9, 5},
		{12, 8},
		{13, 8},
		{16, 8},
		{1000, 500},
		{1001, 501},
		{1006, 504},
	}

	for _, tt := range tests {
		data := seqBytes(tt.length)

		w, err := Decode(buildWav(2, 44100, 16, data))
		if err != nil {
			t.Fatal(err)
		}

		if err := w.DoubleSpeed(); err != nil {
			t.Fatalf("length %d: %v", tt.length, err)
		}

		if len(w.Data.Data) != tt.want {
			t.Fatalf("length %d: transformed length=%d, want %d", tt.length, len(w.Data.Data), tt.want)
		}

		if int(w.Data.Size) != tt.want {
			t.Fatalf("length %d: data size=%d, want %d", tt.length, w.Data.Size, tt.want)
		}

		if !bytes.Equal(w.Data.Data, keepByIndex(data)) {
			t.Fatalf("length %d: kept bytes %v, want %v", tt.length, w.Data.Data, keepByIndex(data))
		}

		if want := uint32((36+tt.length-36)/2 + 36); w.Header.Size != want {
			t.Fatalf("length %d: riff size=%d, want %d", tt.length, w.Header.Size, want)
		}
	}
}

func TestDoubleSpeedEncodes(t *testing.T) {
	w, err := Decode(stereo16(4))
	if err != nil {
		t.Fatal(err)
	}

	if err := w.DoubleSpeed(); err != nil {
		t.Fatal(err)
	}

	want := buildWav(2, 44100, 16, []byte{1, 0, 0xff, 0xff, 3, 0, 0xfd, 0xff})
	if got := w.Encode(); !bytes.Equal(got, want) {
		t.Fatalf("encoded %v, want %v", got, want)
	}
}

func TestDoubleSpeedTwice(t *testing.T) {
	w, err := Decode(buildWav(2, 44100, 16, seqBytes(16)))
	if err != nil {
		t.Fatal(err)
	}

	for range 2 {
		if err := w.DoubleSpeed(); err != nil {
			t.Fatal(err)
		}
	}

	if !bytes.Equal(w.Data.Data, []byte{0, 1, 2, 3}) {
		t.Fatalf("data=%v, want [0 1 2 3]", w.Data.Data)
	}

	if w.Header.Size != 40 {
		t.Fatalf("riff size=%d, want 40", w.Header.Size)
	}
}

func TestDoubleSpeedHeaderUnderflow(t *testing.T) {
	w, err := Decode(patch(stereo16(2), 4, le32(35)))
	if err != nil {
		t.Fatal(err)
	}

	before := w.Clone()

	if err := w.DoubleSpeed(); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err=%v, want ErrMalformedInput", err)
	}

	if !bytes.Equal(w.Encode(), before.Encode()) {
		t.Fatalf("failed transform mutated the wav")
	}
}

func TestDoubleSpeedUndecoded(t *testing.T) {
	tests := []struct {
		name string
		w    *Wav
	}{
		{"nil", nil},
		{"zero", &Wav{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.w.DoubleSpeed(); !errors.Is(err, ErrPreconditionViolated) {
				t.Fatalf("err=%v, want ErrPreconditionViolated", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	w, err := Decode(stereo16(8))
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Apply(DoubleSpeed); err != nil {
		t.Fatal(err)
	}

	if w.Frames() != 4 {
		t.Fatalf("frames=%d, want 4", w.Frames())
	}

	if err := w.Apply(Transform(42)); !errors.Is(err, ErrPreconditionViolated) {
		t.Fatalf("err=%v, want ErrPreconditionViolated", err)
	}
}

func TestTransformString(t *testing.T) {
	if got := DoubleSpeed.String(); got != "double-speed" {
		t.Fatalf("String()=%q", got)
	}

	if got := Transform(9).String(); got != "Transform(9)" {
		t.Fatalf("String()=%q", got)
	}
}
