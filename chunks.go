package quikka

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkInfo describes one top-level chunk of a RIFF file.
type ChunkInfo struct {
	ID [4]byte
	// Size is the declared payload size, without the pad byte.
	Size uint32
	// Offset is the position of the chunk header from the start of the file.
	Offset int64
}

func (c ChunkInfo) String() string {
	return fmt.Sprintf("%q at %d (%d bytes)", c.ID[:], c.Offset, c.Size)
}

// ListChunks walks the top-level chunks of a RIFF/WAVE stream without
// decoding them. A chunk whose payload runs past the end of the stream is
// still reported.
func ListChunks(r io.Reader) ([]ChunkInfo, error) {
	parser := riff.New(r)

	id, _, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("failed to read riff header: %w", err)
	}

	if id != riff.RiffID {
		return nil, fmt.Errorf("%w: riff header id can only be %q, got %q", ErrMalformedInput, riff.RiffID[:], id[:])
	}

	var format [4]byte
	if err := binary.Read(r, binary.BigEndian, &format); err != nil {
		return nil, fmt.Errorf("failed to read riff format: %w", err)
	}

	if format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: riff header format can only be %q, got %q", ErrMalformedInput, riff.WavFormatID[:], format[:])
	}

	var (
		chunks []ChunkInfo
		offset int64 = riffHeaderLen
	)

	for {
		id, size, err := parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return chunks, nil
			}

			return chunks, fmt.Errorf("failed to read chunk header: %w", err)
		}

		chunks = append(chunks, ChunkInfo{ID: id, Size: size, Offset: offset})

		// chunks are word aligned
		skip := int64(size)
		if size%2 == 1 {
			skip++
		}

		n, err := io.CopyN(io.Discard, r, skip)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return chunks, nil
			}

			return chunks, fmt.Errorf("failed to skip chunk %q: %w", id[:], err)
		}

		offset += chunkHeaderLen + n
	}
}
