package quikka

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Transform selects one of the in-place mutations a Wav supports.
type Transform int

const (
	// DoubleSpeed drops every other frame, see Wav.DoubleSpeed.
	DoubleSpeed Transform = iota + 1
)

func (t Transform) String() string {
	switch t {
	case DoubleSpeed:
		return "double-speed"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// doubleSpeedGroup is the byte width of one retained or dropped unit.
// It is fixed to one 16-bit stereo frame and is not derived from the fmt
// chunk.
const doubleSpeedGroup = 4

// Apply runs t on w in place.
func (w *Wav) Apply(t Transform) error {
	switch t {
	case DoubleSpeed:
		return w.DoubleSpeed()
	default:
		return fmt.Errorf("%w: no such transform %s", ErrPreconditionViolated, t)
	}
}

// DoubleSpeed keeps the even-indexed 4-byte groups of the data chunk and
// drops the odd ones, leaving the sample rate untouched. Playback is twice
// as fast and an octave higher. Both size fields are updated. The RIFF size
// is halved around the 36-byte overhead while the data size is taken from
// the filtered payload.
//
// The transform is not idempotent, each call halves the data again.
func (w *Wav) DoubleSpeed() error {
	if w == nil || w.Header == nil || w.Data == nil {
		return fmt.Errorf("%w: wav was never decoded", ErrPreconditionViolated)
	}

	before := len(w.Data.Data)

	if err := w.Header.halveSize(); err != nil {
		return err
	}

	w.Data.Data = keepAlternateGroups(w.Data.Data, doubleSpeedGroup)
	w.Data.Size = uint32(len(w.Data.Data))

	logger.WithFields(logrus.Fields{
		"transform": DoubleSpeed.String(),
		"data_in":   before,
		"data_out":  len(w.Data.Data),
		"riff_size": w.Header.Size,
	}).Debug("applied transform")

	return nil
}

// keepAlternateGroups returns the bytes at index i where (i/group)%2 == 0.
// A short trailing group is kept when its index is even.
func keepAlternateGroups(data []byte, group int) []byte {
	out := make([]byte, 0, len(data)/2+group)

	for start := 0; start < len(data); start += 2 * group {
		end := min(start+group, len(data))
		out = append(out, data[start:end]...)
	}

	return out
}
