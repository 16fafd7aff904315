// Package frame splits a sample stream into fixed-length, possibly
// overlapping chunks for short-time analysis.
//
// A chunk is a read-only view into the caller's stream; no samples are
// copied. Chunk starts are 0, offset, 2*offset, ... and a trailing chunk
// that would run past the end of the stream is dropped rather than padded.
package frame
