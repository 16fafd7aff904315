package spectrogram

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// Matrix is a dense row-major table of values. Rows are time slices in
// stream order and columns are frequency bins.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// Stack copies frames into a matrix, one frame per row.
//
// Every frame must have the length of frames[0]; the first mismatch is
// returned as a [*ShapeError].
func Stack(frames [][]float64) (*Matrix, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames to stack", ErrUnsupportedInput)
	}

	cols := len(frames[0])
	for i, f := range frames {
		if len(f) != cols {
			return nil, &ShapeError{Row: i, Want: cols, Got: len(f)}
		}
	}

	m := NewMatrix(len(frames), cols)
	for i, f := range frames {
		copy(m.Row(i), f)
	}
	return m, nil
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// Row returns a view of row r.
func (m *Matrix) Row(r int) []float64 {
	return m.Data[r*m.Cols : (r+1)*m.Cols : (r+1)*m.Cols]
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Data: append([]float64(nil), m.Data...)}
}

// Map returns a new matrix holding f applied to every value.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, v := range m.Data {
		out.Data[i] = f(v)
	}
	return out
}

// MinMax returns the smallest and largest value, ignoring NaN.
func (m *Matrix) MinMax() (min, max float64, ok bool) {
	return core.MinMax(m.Data)
}

// String describes the matrix shape.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.Rows, m.Cols)
}
