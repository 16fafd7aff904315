package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// BinCount returns the number of non-redundant bins of a real transform of
// length n, floor(n/2)+1. It returns 0 for n < 1.
func BinCount(n int) int {
	if n < 1 {
		return 0
	}
	return n/2 + 1
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	magnitudeInto(out, in)
	return out
}

// magnitudeInto writes |in[k]| into dst; len(dst) must equal len(in).
func magnitudeInto(dst []float64, in []complex128) {
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// PeakBin returns the index and value of the largest magnitude. It returns
// (-1, 0) for an empty frame.
func PeakBin(mag []float64) (int, float64) {
	if len(mag) == 0 {
		return -1, 0
	}

	best := 0
	for i, v := range mag {
		if v > mag[best] {
			best = i
		}
	}
	return best, mag[best]
}

// BinFrequency returns the centre frequency in Hz of bin k for a transform
// of length n at sampleRate.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(n)
}
