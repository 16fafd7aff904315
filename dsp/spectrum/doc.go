// Package spectrum computes one-sided magnitude spectra of real-valued
// frames.
//
// [Transformer] wraps two FFT backends: algo-fft plans for power-of-two
// lengths and gonum's real-input FFT for every other length. Both produce
// the non-redundant half spectrum of floor(L/2)+1 bins; phase is discarded.
package spectrum
