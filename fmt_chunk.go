package quikka

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	fmtChunkLen = 24
	// pcmFmtSize is the only fmt chunk body size accepted; extended
	// formats carry more bytes.
	pcmFmtSize   = 16
	wavFormatPCM = 1
)

// FormatSubchunk stores the parsed 16-byte PCM fmt chunk.
type FormatSubchunk struct {
	ID            [4]byte
	Size          uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func decodeFormatSubchunk(b []byte) (*FormatSubchunk, error) {
	if len(b) != fmtChunkLen {
		return nil, fmt.Errorf("%w: format subchunk should be %d bytes, got %d", ErrMalformedInput, fmtChunkLen, len(b))
	}

	if err := readTag(b[0:4], riff.FmtID, "format subchunk id"); err != nil {
		return nil, err
	}

	f := &FormatSubchunk{ID: riff.FmtID}

	var err error

	f.Size, err = readUint32(b[4:8])
	if err != nil {
		return nil, err
	}

	if f.Size != pcmFmtSize {
		return nil, fmt.Errorf("%w: format subchunk size should be %d (PCM), got %d", ErrMalformedInput, pcmFmtSize, f.Size)
	}

	f.AudioFormat, err = readUint16(b[8:10])
	if err != nil {
		return nil, err
	}

	if f.AudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: audio format can only be %d (PCM), got %d", ErrMalformedInput, wavFormatPCM, f.AudioFormat)
	}

	// the remaining fields are taken as they are
	if f.NumChannels, err = readUint16(b[10:12]); err != nil {
		return nil, err
	}

	if f.SampleRate, err = readUint32(b[12:16]); err != nil {
		return nil, err
	}

	if f.ByteRate, err = readUint32(b[16:20]); err != nil {
		return nil, err
	}

	if f.BlockAlign, err = readUint16(b[20:22]); err != nil {
		return nil, err
	}

	if f.BitsPerSample, err = readUint16(b[22:24]); err != nil {
		return nil, err
	}

	return f, nil
}

// Encode returns the on-disk representation of the fmt chunk.
func (f *FormatSubchunk) Encode() []byte {
	buf := make([]byte, 0, fmtChunkLen)
	buf = append(buf, f.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, f.Size)
	buf = binary.LittleEndian.AppendUint16(buf, f.AudioFormat)
	buf = binary.LittleEndian.AppendUint16(buf, f.NumChannels)
	buf = binary.LittleEndian.AppendUint32(buf, f.SampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, f.ByteRate)
	buf = binary.LittleEndian.AppendUint16(buf, f.BlockAlign)

	return binary.LittleEndian.AppendUint16(buf, f.BitsPerSample)
}

func (f *FormatSubchunk) Clone() *FormatSubchunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}
