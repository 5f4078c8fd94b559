package quikka

import "errors"

var (
	// ErrMalformedInput is returned when a chunk tag, fixed size or format
	// code does not match the canonical PCM layout, or a field slice has the
	// wrong width.
	ErrMalformedInput = errors.New("malformed wav input")
	// ErrPreconditionViolated is returned when an Operation is used out of
	// order or a transform is requested on a Wav that was never decoded.
	ErrPreconditionViolated = errors.New("precondition violated")
	// ErrUnknownOperation is returned by OperationRegistry.Lookup.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrUnsupportedBitDepth is returned when PCM samples can't be unpacked.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
