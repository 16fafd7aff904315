package spectrum

import "errors"

var (
	// ErrInvalidLength is returned for non-positive transform lengths.
	ErrInvalidLength = errors.New("spectrum: transform length must be > 0")
	// ErrLengthMismatch is returned when a frame does not match the transform length.
	ErrLengthMismatch = errors.New("spectrum: frame length does not match transform length")
	// ErrBackendUnsupported is returned when the requested backend cannot handle the length.
	ErrBackendUnsupported = errors.New("spectrum: backend does not support transform length")
)
