package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"
	"github.com/quikka/quikka"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-frequency", "220", "-rate", "48000"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		t.Fatalf("generated file is not a valid wav")
	}

	if dec.SampleRate != 48000 {
		t.Fatalf("sample rate=%d, want 48000", dec.SampleRate)
	}

	if dec.BitDepth != 16 {
		t.Fatalf("bit depth=%d, want 16", dec.BitDepth)
	}

	if dec.NumChans != 2 {
		t.Fatalf("channels=%d, want 2", dec.NumChans)
	}
}

func TestRunDefaultParams(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "default.wav")

	err := run([]string{"-output", outPath, "-length", "0.005", "-channels", "1"})
	if err != nil {
		t.Fatalf("run with defaults failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}

	w, err := quikka.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	// 0.005 sec * 44100 Hz = 220 frames
	if w.Frames() != 220 {
		t.Fatalf("expected 220 frames, got %d", w.Frames())
	}

	if err := w.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-length", "not-a-number"})
	if err == nil {
		t.Fatalf("expected failure for invalid flag value")
	}
}

func TestRunRejectsBadChannels(t *testing.T) {
	err := run([]string{"-output", filepath.Join(t.TempDir(), "x.wav"), "-channels", "0"})
	if err == nil {
		t.Fatalf("expected failure for zero channels")
	}
}

func TestRunRejectsNegativeLength(t *testing.T) {
	for _, length := range []string{"-1", "NaN"} {
		outPath := filepath.Join(t.TempDir(), "x.wav")

		err := run([]string{"-output", outPath, "-length", length})
		if err == nil {
			t.Fatalf("expected failure for length %s", length)
		}

		if _, statErr := os.Stat(outPath); statErr == nil {
			t.Fatalf("length %s: no file should be written", length)
		}
	}
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-output", "/nonexistent/dir/file.wav", "-length", "0.001"})
	if err == nil {
		t.Fatal("expected error for invalid output path")
	}
}
