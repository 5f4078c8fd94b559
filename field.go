package quikka

import (
	"encoding/binary"
	"fmt"
)

func readUint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("%w: u16 field needs 2 bytes, got %d", ErrMalformedInput, len(b))
	}

	return binary.LittleEndian.Uint16(b), nil
}

func readUint32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: u32 field needs 4 bytes, got %d", ErrMalformedInput, len(b))
	}

	return binary.LittleEndian.Uint32(b), nil
}

// readTag checks that b holds exactly the 4 ASCII bytes of want.
func readTag(b []byte, want [4]byte, what string) error {
	if len(b) != 4 {
		return fmt.Errorf("%w: %s tag needs 4 bytes, got %d", ErrMalformedInput, what, len(b))
	}

	if [4]byte(b) != want {
		return fmt.Errorf("%w: %s can only be %q, got %q", ErrMalformedInput, what, want[:], b)
	}

	return nil
}
