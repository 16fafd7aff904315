package spectrogram

import "github.com/cwbudde/algo-spectrogram/stats/frequency"

// SliceStats describes one time slice of a result.
type SliceStats struct {
	Index int
	Start int // first sample of the chunk
	frequency.Stats
}

// Summary computes per-slice spectral statistics from the magnitude matrix.
func (r *Result) Summary(sampleRate float64) []SliceStats {
	if r == nil || r.Magnitude == nil {
		return nil
	}
	out := make([]SliceStats, r.Magnitude.Rows)
	for i := range out {
		out[i] = SliceStats{
			Index: i,
			Start: i * r.Offset,
			Stats: frequency.Calculate(r.Magnitude.Row(i), r.Stride, sampleRate),
		}
	}
	return out
}
