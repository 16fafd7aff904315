package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeRectangular leaves samples untouched; it is the "windowing off" policy.
	TypeRectangular Type = iota
	// TypeHamming is the raised-cosine taper a - b*cos(2*pi*n/L).
	TypeHamming
)

// Raised-cosine coefficients of the Hamming taper.
const (
	HammingA = 0.53836
	HammingB = 0.46164
)

// String returns the lower-case window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHamming:
		return "hamming"
	default:
		return "unknown"
	}
}

// Generate returns window coefficients of the given length.
//
// Coefficients are evaluated at n/length (periodic form), so a Hamming window
// starts at a-b and reaches its peak a+b at the midpoint of an even length.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for n := range out {
		out[n] = At(t, n, length)
	}

	return out
}

// At evaluates a single coefficient of a length-long window.
func At(t Type, n, length int) float64 {
	switch t {
	case TypeHamming:
		if length <= 0 {
			return 1
		}
		return HammingA - HammingB*math.Cos(2*math.Pi*float64(n)/float64(length))
	default:
		return 1
	}
}

// Apply returns a tapered copy of chunk. The input is left untouched.
func Apply(t Type, chunk []float64) []float64 {
	if len(chunk) == 0 {
		return nil
	}

	out := make([]float64, len(chunk))
	if t == TypeRectangular {
		copy(out, chunk)
		return out
	}

	vecmath.MulBlock(out, chunk, Generate(t, len(chunk)))

	return out
}

// Taper holds precomputed coefficients for one window length so repeated
// chunks of that length do not regenerate them.
type Taper struct {
	typ    Type
	coeffs []float64
}

// NewTaper precomputes a window of the given type and length.
func NewTaper(t Type, length int) (*Taper, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if t != TypeRectangular && t != TypeHamming {
		return nil, errUnknownType
	}

	return &Taper{typ: t, coeffs: Generate(t, length)}, nil
}

// Type returns the window type.
func (w *Taper) Type() Type { return w.typ }

// Len returns the window length.
func (w *Taper) Len() int { return len(w.coeffs) }

// Coefficients returns a copy of the window coefficients.
func (w *Taper) Coefficients() []float64 {
	return append([]float64(nil), w.coeffs...)
}

// ApplyTo writes the tapered src into dst. Both must match the taper length;
// dst and src may not overlap partially but may be the same slice.
func (w *Taper) ApplyTo(dst, src []float64) error {
	if len(dst) != len(w.coeffs) || len(src) != len(w.coeffs) {
		return errMismatchedLength
	}

	if w.typ == TypeRectangular {
		copy(dst, src)
		return nil
	}

	vecmath.MulBlock(dst, src, w.coeffs)

	return nil
}
