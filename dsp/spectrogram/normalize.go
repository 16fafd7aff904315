package spectrogram

import "github.com/cwbudde/algo-vecmath"

// PixelDepth is the upper bound of the normalized range used for 8-bit images.
const PixelDepth = 255

// Normalize maps m affinely onto [0, upper]: the minimum becomes 0 and the
// maximum becomes upper.
//
// When every value is equal (or m is empty) there is no range to stretch;
// the result is all zeros and degenerate is true. A non-positive upper also
// yields all zeros.
func Normalize(m *Matrix, upper float64) (out *Matrix, degenerate bool) {
	out = NewMatrix(m.Rows, m.Cols)

	lo, hi, ok := m.MinMax()
	if !ok || hi == lo {
		return out, true
	}
	if !(upper > 0) {
		return out, false
	}

	for i, v := range m.Data {
		out.Data[i] = v - lo
	}
	vecmath.ScaleBlockInPlace(out.Data, upper/(hi-lo))

	// Extremes map exactly onto 0 and upper.
	for i, v := range m.Data {
		switch v {
		case lo:
			out.Data[i] = 0
		case hi:
			out.Data[i] = upper
		}
	}
	return out, false
}
