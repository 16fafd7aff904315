package spectrogram

import "fmt"

// Downmix collapses a one- or two-channel signal into a mono stream.
//
// One channel is copied. Two channels are averaged per sample,
// (left[i]+right[i])/2. Zero channels, more than two channels, or channels of
// different length are rejected with [ErrUnsupportedInput].
func Downmix(channels ...[]float64) ([]float64, error) {
	switch len(channels) {
	case 1:
		return append([]float64(nil), channels[0]...), nil
	case 2:
		left, right := channels[0], channels[1]
		if len(left) != len(right) {
			return nil, fmt.Errorf("%w: channel lengths differ: %d != %d", ErrUnsupportedInput, len(left), len(right))
		}
		out := make([]float64, len(left))
		for i := range out {
			out[i] = (left[i] + right[i]) / 2
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d channels, want 1 or 2", ErrUnsupportedInput, len(channels))
	}
}
