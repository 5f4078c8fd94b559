package quikka

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// IntBuffer unpacks the data chunk into interleaved integer samples. 8-bit
// samples are shifted from unsigned to signed. A trailing partial sample is
// dropped.
func (w *Wav) IntBuffer() (*audio.IntBuffer, error) {
	if w == nil || w.Format == nil || w.Data == nil {
		return nil, fmt.Errorf("%w: wav was never decoded", ErrPreconditionViolated)
	}

	bitDepth := int(w.Format.BitsPerSample)

	decodeF, err := sampleDecodeIntFunc(bitDepth)
	if err != nil {
		return nil, err
	}

	width := bitDepth / 8
	data := w.Data.Data
	samples := make([]int, len(data)/width)

	for i := range samples {
		samples[i] = decodeF(data[i*width : (i+1)*width])
	}

	return &audio.IntBuffer{
		Format:         w.AudioFormat(),
		Data:           samples,
		SourceBitDepth: bitDepth,
	}, nil
}

func sampleDecodeIntFunc(bitDepth int) (func([]byte) int, error) {
	switch bitDepth {
	case 8:
		return func(b []byte) int { return int(b[0]) - 128 }, nil
	case 16:
		return func(b []byte) int { return int(int16(binary.LittleEndian.Uint16(b))) }, nil
	case 24:
		return func(b []byte) int {
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			if v&0x800000 != 0 {
				v |= ^0xffffff
			}

			return int(v)
		}, nil
	case 32:
		return func(b []byte) int { return int(int32(binary.LittleEndian.Uint32(b))) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
