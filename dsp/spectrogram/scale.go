package spectrogram

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// Floor is the smallest magnitude that is passed to a logarithm.
const Floor = 1.0

// Policy selects how magnitudes below [Floor] are handled by [Scale].
type Policy int

const (
	// PolicyClamp replaces values below Floor with Floor, then applies 10*log10(v^2).
	PolicyClamp Policy = iota
	// PolicyMaskFill applies 10*log10(v) to values >= Floor and fills the rest
	// with the smallest valid result.
	PolicyMaskFill
)

// String returns the policy name accepted by [ParsePolicy].
func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	case PolicyMaskFill:
		return "maskfill"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a policy name to its value.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "clamp":
		return PolicyClamp, nil
	case "maskfill", "mask-fill", "mask":
		return PolicyMaskFill, nil
	default:
		return PolicyClamp, fmt.Errorf("%w: unknown policy %q", ErrInvalidParameter, name)
	}
}

// Scale converts a magnitude matrix to a logarithmic intensity matrix.
//
// Every output value is finite and >= 0 for finite input. NaN magnitudes are
// treated like values below Floor.
func Scale(m *Matrix, p Policy) (*Matrix, error) {
	switch p {
	case PolicyClamp:
		return scaleClamp(m), nil
	case PolicyMaskFill:
		return scaleMaskFill(m), nil
	default:
		return nil, fmt.Errorf("%w: unknown policy %v", ErrInvalidParameter, p)
	}
}

func scaleClamp(m *Matrix) *Matrix {
	return m.Map(func(v float64) float64 {
		if !(v >= Floor) {
			v = Floor
		}
		// 10*log10(v^2) == 20*log10(v) without squaring large magnitudes.
		return core.LinearToDB(v)
	})
}

func scaleMaskFill(m *Matrix) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	valid := make([]bool, len(m.Data))

	fill := 0.0
	seen := false
	for i, v := range m.Data {
		if !(v >= Floor) {
			continue
		}
		db := core.LinearPowerToDB(v)
		out.Data[i] = db
		valid[i] = true
		if !seen || db < fill {
			fill, seen = db, true
		}
	}

	for i, ok := range valid {
		if !ok {
			out.Data[i] = fill
		}
	}
	return out
}

// Emphasize raises every value to power, a positive integer, compressing
// quiet regions relative to strong ones.
//
// A power large enough to overflow any entry fails with [ErrInvalidParameter].
func Emphasize(m *Matrix, power int) (*Matrix, error) {
	if power < 1 {
		return nil, fmt.Errorf("%w: power must be >= 1: %d", ErrInvalidParameter, power)
	}
	out := m.Map(func(v float64) float64 {
		return core.IntPow(v, power)
	})
	for i, v := range out.Data {
		if !core.IsFinite(v) && core.IsFinite(m.Data[i]) {
			return nil, fmt.Errorf("%w: power %d overflows intensity range", ErrInvalidParameter, power)
		}
	}
	return out, nil
}
