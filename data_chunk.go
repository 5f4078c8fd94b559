package quikka

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const chunkHeaderLen = 8

// DataSubchunk holds the raw sample bytes of the data chunk.
type DataSubchunk struct {
	ID [4]byte
	// Size is the declared byte length. Decode keeps it as read even when it
	// disagrees with len(Data).
	Size uint32
	Data []byte
}

// decodeDataSubchunk takes every byte after the 8-byte chunk header as
// sample data, regardless of the declared size.
func decodeDataSubchunk(b []byte) (*DataSubchunk, error) {
	if len(b) < chunkHeaderLen {
		return nil, fmt.Errorf("%w: data subchunk needs at least %d bytes, got %d", ErrMalformedInput, chunkHeaderLen, len(b))
	}

	if err := readTag(b[0:4], riff.DataFormatID, "data subchunk id"); err != nil {
		return nil, err
	}

	size, err := readUint32(b[4:8])
	if err != nil {
		return nil, err
	}

	return &DataSubchunk{
		ID:   riff.DataFormatID,
		Size: size,
		Data: append([]byte(nil), b[chunkHeaderLen:]...),
	}, nil
}

// Encode returns the on-disk representation of the data chunk.
func (d *DataSubchunk) Encode() []byte {
	buf := make([]byte, 0, chunkHeaderLen+len(d.Data))
	buf = append(buf, d.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, d.Size)

	return append(buf, d.Data...)
}

func (d *DataSubchunk) Clone() *DataSubchunk {
	if d == nil {
		return nil
	}

	out := *d
	out.Data = append([]byte(nil), d.Data...)

	return &out
}
