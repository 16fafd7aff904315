package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// PCM16Sine generates a sine wave quantised to 16-bit integer sample values,
// as a WAV decoder would deliver them.
func PCM16Sine(freqHz, sampleRate, fullScale float64, length int) []int {
	s := DeterministicSine(freqHz, sampleRate, fullScale*math.MaxInt16, length)
	out := make([]int, length)
	for i, v := range s {
		out[i] = int(math.Round(v))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Interleave merges equal-length channels into one frame-interleaved slice.
func Interleave(channels ...[]int) []int {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	out := make([]int, 0, n*len(channels))
	for i := 0; i < n; i++ {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}
	return out
}
