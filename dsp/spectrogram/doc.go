// Package spectrogram turns a mono sample stream into a calibrated intensity
// matrix and an 8-bit grayscale image.
//
// The pipeline is a batch transform:
//
//	stream -> frame.Split -> window taper -> |rFFT| -> Scale -> Emphasize -> Normalize -> ToPixels
//
// Each stage returns a new value; no stage mutates its input. [Compute] runs
// the numeric stages and [Result.Image] applies the pixel mapping.
//
// # Intensity scaling
//
// Magnitudes below 1 never reach a logarithm. Two policies are available:
//
//   - [PolicyClamp] (default) raises every value below 1 to 1 and computes
//     10*log10(v^2). The display floor is fixed at 0 dB.
//   - [PolicyMaskFill] computes 10*log10(v) for values >= 1 only and fills
//     the remaining entries with the smallest valid result, so the floor
//     follows the quietest real measurement. With no valid entry at all,
//     every entry is 0.
//
// After scaling every value is raised to an integer emphasis power.
//
// # Normalization
//
// The emphasized matrix is mapped affinely onto [0, upper]. A constant matrix
// has no range to stretch; it maps to all zeros and the degenerate flag is
// set, which the pipeline reports as [ErrDegenerateRange] through the
// warning handler without failing.
//
// # Orientation
//
// [ToPixels] transposes and mirrors the matrix: image column x is time slice
// x and image row y is frequency bin Cols-1-y, so time runs left to right and
// frequency increases upward.
package spectrogram
