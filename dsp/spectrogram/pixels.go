package spectrogram

import (
	"image"
	"math"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// ToPixels renders a normalized matrix as an 8-bit grayscale image.
//
// The image is m.Rows wide and m.Cols tall: column x holds time slice x and
// row y holds frequency bin m.Cols-1-y. Values are rounded to the nearest
// integer and clamped to [0, 255]; NaN maps to 0.
func ToPixels(m *Matrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Rows, m.Cols))
	for r := 0; r < m.Rows; r++ {
		row := m.Row(r)
		for c, v := range row {
			y := m.Cols - 1 - c
			img.Pix[y*img.Stride+r] = toPixel(v)
		}
	}
	return img
}

func toPixel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(core.Clamp(math.Round(v), 0, math.MaxUint8))
}
