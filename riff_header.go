package quikka

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	riffHeaderLen = 12
	// canonicalOverhead is the byte count between the RIFF size field and the
	// first data byte: "WAVE", the fmt chunk and the data chunk header.
	canonicalOverhead = 36
)

// RiffHeader is the 12-byte RIFF container header.
type RiffHeader struct {
	ID [4]byte
	// Size is the total file size minus 8.
	Size   uint32
	Format [4]byte
}

func decodeRiffHeader(b []byte) (*RiffHeader, error) {
	if len(b) != riffHeaderLen {
		return nil, fmt.Errorf("%w: riff header should be %d bytes, got %d", ErrMalformedInput, riffHeaderLen, len(b))
	}

	if err := readTag(b[0:4], riff.RiffID, "riff header id"); err != nil {
		return nil, err
	}

	size, err := readUint32(b[4:8])
	if err != nil {
		return nil, err
	}

	if err := readTag(b[8:12], riff.WavFormatID, "riff header format"); err != nil {
		return nil, err
	}

	return &RiffHeader{ID: riff.RiffID, Size: size, Format: riff.WavFormatID}, nil
}

// Encode returns the on-disk representation of the header.
func (h *RiffHeader) Encode() []byte {
	buf := make([]byte, 0, riffHeaderLen)
	buf = append(buf, h.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Size)

	return append(buf, h.Format[:]...)
}

func (h *RiffHeader) Clone() *RiffHeader {
	if h == nil {
		return nil
	}

	out := *h

	return &out
}

// halveSize rewrites Size for a data payload that lost every other group.
// The fixed overhead is kept out of the halving.
func (h *RiffHeader) halveSize() error {
	if h.Size < canonicalOverhead {
		return fmt.Errorf("%w: riff size %d is smaller than the %d byte header overhead", ErrMalformedInput, h.Size, canonicalOverhead)
	}

	h.Size = ((h.Size - canonicalOverhead) / 2) + canonicalOverhead

	return nil
}
