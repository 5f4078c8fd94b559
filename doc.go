// Package quikka reads canonical PCM WAV files, applies simple speed
// transforms to them and writes them back byte for byte.
//
// Only the canonical 44-byte layout is accepted: a RIFF header, a 16-byte
// PCM fmt chunk and a data chunk, in that order. Anything else is rejected
// with ErrMalformedInput.
//
// A typical round trip:
//
//	w, err := quikka.Decode(buf)
//	if err != nil {
//		return err
//	}
//	if err := w.DoubleSpeed(); err != nil {
//		return err
//	}
//	out := w.Encode()
//
// The Operation type binds a transform to a name so command line tools can
// select it, see NewOperationRegistry.
package quikka
