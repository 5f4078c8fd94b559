package quikka

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

// WriteAIFF encodes the Wav's samples as an AIFF file. The underlying writer
// is not closed.
func (w *Wav) WriteAIFF(out io.WriteSeeker) error {
	buf, err := w.IntBuffer()
	if err != nil {
		return err
	}

	enc := aiff.NewEncoder(out, int(w.Format.SampleRate), buf.SourceBitDepth, int(w.Format.NumChannels))

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode aiff: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize aiff: %w", err)
	}

	return nil
}
