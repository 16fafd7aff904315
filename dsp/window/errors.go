package window

import (
	"errors"
	"fmt"
)

var (
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
	errUnknownType      = errors.New("window: unknown window type")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}
