package frame

// Chunk is a stride-long slice of a sample stream.
type Chunk struct {
	// Start is the index of the first sample within the stream.
	Start int
	// Samples aliases the stream; callers must not modify it.
	Samples []float64
}

// Len returns the chunk length.
func (c Chunk) Len() int { return len(c.Samples) }

// Count returns how many chunks Split produces for a stream of n samples.
// It returns 0 for invalid parameters.
func Count(n, stride, offset int) int {
	if validate(stride, offset) != nil || n < stride {
		return 0
	}
	return (n-stride)/offset + 1
}

// SkipsSamples reports whether consecutive chunks leave a gap, i.e. some
// samples between chunks are never read.
func SkipsSamples(stride, offset int) bool {
	return stride < offset
}

// Skipped returns the number of samples of an n-sample stream that no chunk
// covers, counting gaps between chunks and the dropped tail.
func Skipped(n, stride, offset int) int {
	count := Count(n, stride, offset)
	if count == 0 {
		if n < 0 {
			return 0
		}
		return n
	}

	covered := count * stride
	if !SkipsSamples(stride, offset) {
		covered = (count-1)*offset + stride
	}
	return n - covered
}

// Split cuts stream into stride-long chunks whose starts advance by offset.
//
// The returned chunks alias stream. An empty result with a nil error means
// the stream is shorter than stride.
func Split(stream []float64, stride, offset int) ([]Chunk, error) {
	if err := validate(stride, offset); err != nil {
		return nil, err
	}

	count := Count(len(stream), stride, offset)
	chunks := make([]Chunk, count)
	for i := range chunks {
		start := i * offset
		chunks[i] = Chunk{
			Start:   start,
			Samples: stream[start : start+stride : start+stride],
		}
	}
	return chunks, nil
}
