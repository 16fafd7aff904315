// Package frequency summarises one-sided magnitude spectra.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds frequency-domain statistics of one magnitude frame.
type Stats struct {
	BinCount int
	Max      float64
	MaxBin   int
	PeakHz   float64 // centre frequency of MaxBin
	Sum      float64 // sum of magnitudes
	Energy   float64 // sum of squared magnitudes
	Centroid float64 // spectral centroid (Hz)
	Flatness float64 // spectral flatness (Wiener entropy), 0..1
	Rolloff  float64 // frequency below which 85% energy lies (Hz)
}

// binFreq returns the frequency in Hz of bin i of a frameLen-point transform.
func binFreq(i, frameLen int, sampleRate float64) float64 {
	if frameLen <= 0 {
		return 0
	}
	return float64(i) * sampleRate / float64(frameLen)
}

// Calculate computes statistics of a one-sided magnitude spectrum (linear
// scale) produced by a frameLen-point transform at sampleRate.
//
// Unlike a bare bin count, frameLen disambiguates odd transform lengths,
// which share their bin count with the next even length.
func Calculate(magnitude []float64, frameLen int, sampleRate float64) Stats {
	n := len(magnitude)
	s := Stats{BinCount: n}
	if n == 0 {
		return s
	}

	s.Sum = vecmath.Sum(magnitude)
	s.Energy = vecmath.DotProduct(magnitude, magnitude)
	s.Max = magnitude[0]
	for i, v := range magnitude {
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}

	s.PeakHz = binFreq(s.MaxBin, frameLen, sampleRate)
	s.Centroid = centroid(magnitude, frameLen, sampleRate, s.Sum)
	s.Flatness = flatness(magnitude)
	s.Rolloff = rolloff(magnitude, frameLen, sampleRate, 0.85, s.Energy)

	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, frameLen int, sampleRate float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, frameLen, sampleRate, sum)
}

func centroid(magnitude []float64, frameLen int, sampleRate, sumMag float64) float64 {
	if len(magnitude) < 2 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, frameLen, sampleRate) * v
	}
	return weightedSum / sumMag
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// DC bin (index 0) is excluded. If any considered bin is zero, 0 is returned.
func Flatness(magnitude []float64) float64 {
	return flatness(magnitude)
}

func flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

func rolloff(magnitude []float64, frameLen int, sampleRate, percent, totalEnergy float64) float64 {
	n := len(magnitude)
	if n < 2 || totalEnergy == 0 {
		return 0
	}
	threshold := percent * totalEnergy
	cumEnergy := 0.0
	for i, v := range magnitude {
		cumEnergy += v * v
		if cumEnergy >= threshold {
			return binFreq(i, frameLen, sampleRate)
		}
	}
	return binFreq(n-1, frameLen, sampleRate)
}
