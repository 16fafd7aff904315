package frame

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when stride or offset is outside its domain.
var ErrInvalidParameter = errors.New("frame: invalid parameter")

func validate(stride, offset int) error {
	if stride < 1 {
		return fmt.Errorf("%w: stride must be >= 1: %d", ErrInvalidParameter, stride)
	}
	if offset < 1 {
		return fmt.Errorf("%w: offset must be >= 1: %d", ErrInvalidParameter, offset)
	}
	return nil
}
