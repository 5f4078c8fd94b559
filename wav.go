package quikka

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const minWavLen = riffHeaderLen + fmtChunkLen

// Wav is a decoded canonical PCM WAV file.
type Wav struct {
	Header *RiffHeader
	Format *FormatSubchunk
	Data   *DataSubchunk
}

// New builds a canonical PCM Wav around data. Byte rate and block align are
// derived from the other fields and both size fields are set from len(data).
func New(numChans, sampleRate, bitsPerSample int, data []byte) *Wav {
	blockAlign := numChans * bitsPerSample / 8

	return &Wav{
		Header: &RiffHeader{
			ID:     riff.RiffID,
			Size:   uint32(canonicalOverhead + len(data)),
			Format: riff.WavFormatID,
		},
		Format: &FormatSubchunk{
			ID:            riff.FmtID,
			Size:          pcmFmtSize,
			AudioFormat:   wavFormatPCM,
			NumChannels:   uint16(numChans),
			SampleRate:    uint32(sampleRate),
			ByteRate:      uint32(sampleRate * blockAlign),
			BlockAlign:    uint16(blockAlign),
			BitsPerSample: uint16(bitsPerSample),
		},
		Data: &DataSubchunk{
			ID:   riff.DataFormatID,
			Size: uint32(len(data)),
			Data: append([]byte(nil), data...),
		},
	}
}

// Decode parses a complete canonical WAV file. The first 12 bytes are the
// RIFF header, the next 24 the fmt chunk and the remainder the data chunk.
// Errors from the chunk decoders are returned as is.
func Decode(buf []byte) (*Wav, error) {
	if len(buf) < minWavLen {
		return nil, fmt.Errorf("%w: wav needs at least %d bytes, got %d", ErrMalformedInput, minWavLen, len(buf))
	}

	header, err := decodeRiffHeader(buf[:riffHeaderLen])
	if err != nil {
		return nil, err
	}

	format, err := decodeFormatSubchunk(buf[riffHeaderLen:minWavLen])
	if err != nil {
		return nil, err
	}

	data, err := decodeDataSubchunk(buf[minWavLen:])
	if err != nil {
		return nil, err
	}

	return &Wav{Header: header, Format: format, Data: data}, nil
}

// Encode serializes the three chunks in order.
func (w *Wav) Encode() []byte {
	out := make([]byte, 0, minWavLen+chunkHeaderLen+len(w.Data.Data))
	out = append(out, w.Header.Encode()...)
	out = append(out, w.Format.Encode()...)

	return append(out, w.Data.Encode()...)
}

func (w *Wav) Clone() *Wav {
	if w == nil {
		return nil
	}

	return &Wav{
		Header: w.Header.Clone(),
		Format: w.Format.Clone(),
		Data:   w.Data.Clone(),
	}
}

// Validate checks that the declared sizes agree with each other and with
// the data actually held.
func (w *Wav) Validate() error {
	if w == nil || w.Header == nil || w.Format == nil || w.Data == nil {
		return fmt.Errorf("%w: wav was never decoded", ErrPreconditionViolated)
	}

	if int(w.Data.Size) != len(w.Data.Data) {
		return fmt.Errorf("%w: data size %d does not match %d data bytes", ErrMalformedInput, w.Data.Size, len(w.Data.Data))
	}

	want := uint64(4) + chunkHeaderLen + uint64(w.Format.Size) + chunkHeaderLen + uint64(w.Data.Size)
	if uint64(w.Header.Size) != want {
		return fmt.Errorf("%w: riff size %d, want %d", ErrMalformedInput, w.Header.Size, want)
	}

	return nil
}

// AudioFormat returns the channel count and sample rate as an audio.Format.
func (w *Wav) AudioFormat() *audio.Format {
	if w == nil || w.Format == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(w.Format.NumChannels),
		SampleRate:  int(w.Format.SampleRate),
	}
}

// Frames returns the number of complete sample frames in the data chunk.
func (w *Wav) Frames() int {
	if w == nil || w.Format == nil || w.Data == nil || w.Format.BlockAlign == 0 {
		return 0
	}

	return len(w.Data.Data) / int(w.Format.BlockAlign)
}

// Duration returns the playing time at the declared sample rate.
func (w *Wav) Duration() time.Duration {
	if w == nil || w.Format == nil || w.Format.SampleRate == 0 {
		return 0
	}

	return time.Duration(int64(w.Frames()) * int64(time.Second) / int64(w.Format.SampleRate))
}
