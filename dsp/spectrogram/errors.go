package spectrogram

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a stride, offset, power or worker count
	// outside its domain. It is returned before any processing starts.
	ErrInvalidParameter = errors.New("spectrogram: invalid parameter")
	// ErrUnsupportedInput reports a stream that cannot produce a spectrogram:
	// too many channels, mismatched channels, or too few samples.
	ErrUnsupportedInput = errors.New("spectrogram: unsupported input")
	// ErrShape matches a [*ShapeError].
	ErrShape = errors.New("spectrogram: result is not rectangular")
	// ErrDegenerateRange is reported when normalization meets a constant matrix.
	ErrDegenerateRange = errors.New("spectrogram: degenerate value range")
	// ErrSamplesSkipped is reported when stride < offset leaves samples unread.
	ErrSamplesSkipped = errors.New("spectrogram: stride is less than offset, samples between chunks are skipped")
)

// ShapeError reports a frame whose bin count differs from the first frame.
type ShapeError struct {
	Row  int // offending time slice
	Want int // bins in row 0
	Got  int // bins in Row
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("spectrogram: result is not rectangular: row %d has %d bins, want %d", e.Row, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrShape) hold for every ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}
