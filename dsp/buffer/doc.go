// Package buffer provides a reusable float64 buffer type and a pool used
// for per-chunk scratch space during spectral analysis.
package buffer
