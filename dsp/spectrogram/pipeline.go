package spectrogram

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-spectrogram/dsp/buffer"
	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/frame"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

// Result is the output of [Compute].
type Result struct {
	Stride int
	Offset int

	Chunks  int // time slices
	Bins    int // frequency bins per slice, Stride/2+1
	Skipped int // samples never read because Stride < Offset

	// Magnitude holds |rFFT| of every windowed chunk.
	Magnitude *Matrix
	// Intensity holds the scaled and emphasized values.
	Intensity *Matrix
	// Normalized holds Intensity mapped onto [0, PixelDepth].
	Normalized *Matrix
	// Degenerate is set when Intensity had no range and Normalized is all zeros.
	Degenerate bool

	Backend spectrum.Backend
}

// Image renders the normalized matrix with [ToPixels].
func (r *Result) Image() *image.Gray {
	return ToPixels(r.Normalized)
}

// Compute runs the numeric pipeline over a mono sample stream.
//
// Parameters are validated before any work. Streams shorter than one chunk
// or holding non-finite samples fail with [ErrUnsupportedInput].
func Compute(stream []float64, opts ...Option) (*Result, error) {
	cfg := NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(stream) < cfg.Stride {
		return nil, fmt.Errorf("%w: %d samples is shorter than stride %d", ErrUnsupportedInput, len(stream), cfg.Stride)
	}
	for i, v := range stream {
		if !core.IsFinite(v) {
			return nil, fmt.Errorf("%w: sample %d is not finite", ErrUnsupportedInput, i)
		}
	}

	res := &Result{Stride: cfg.Stride, Offset: cfg.Offset}
	if cfg.skipsSamples() {
		res.Skipped = frame.Skipped(len(stream), cfg.Stride, cfg.Offset)
		cfg.warn(fmt.Errorf("%w: %d samples not read", ErrSamplesSkipped, res.Skipped))
	}

	chunks, err := frame.Split(stream, cfg.Stride, cfg.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	frames, backend, err := analyze(chunks, cfg)
	if err != nil {
		return nil, err
	}
	res.Backend = backend

	if res.Magnitude, err = Stack(frames); err != nil {
		return nil, err
	}
	res.Chunks = res.Magnitude.Rows
	res.Bins = res.Magnitude.Cols

	scaled, err := Scale(res.Magnitude, cfg.Policy)
	if err != nil {
		return nil, err
	}
	if res.Intensity, err = Emphasize(scaled, cfg.Power); err != nil {
		return nil, err
	}

	res.Normalized, res.Degenerate = Normalize(res.Intensity, PixelDepth)
	if res.Degenerate {
		cfg.warn(ErrDegenerateRange)
	}
	return res, nil
}

// Render runs [Compute] and maps the result to pixels.
func Render(stream []float64, opts ...Option) (*image.Gray, *Result, error) {
	res, err := Compute(stream, opts...)
	if err != nil {
		return nil, nil, err
	}
	return res.Image(), res, nil
}

// analyze tapers and transforms every chunk. Chunks are split into
// contiguous ranges, one per worker; each frame lands at its chunk index so
// the output order never depends on scheduling.
func analyze(chunks []frame.Chunk, cfg Config) ([][]float64, spectrum.Backend, error) {
	total := len(chunks)
	frames := make([][]float64, total)
	workers := min(cfg.Workers, total)
	per := (total + workers - 1) / workers

	taper, err := window.NewTaper(cfg.windowType(), cfg.Stride)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	pool := buffer.NewPool()
	progress := newTracker(cfg.Progress, total)
	backends := make([]spectrum.Backend, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * per
		hi := min(lo+per, total)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			tr, err := spectrum.NewTransformer(cfg.Stride, spectrum.WithBackend(cfg.Backend))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
			}
			backends[w] = tr.Backend()

			scratch := pool.Get(cfg.Stride)
			defer pool.Put(scratch)

			for i := lo; i < hi; i++ {
				if err := taper.ApplyTo(scratch.Samples(), chunks[i].Samples); err != nil {
					return fmt.Errorf("spectrogram: chunk %d: %w", i, err)
				}
				mag, err := tr.Transform(scratch.Samples())
				if err != nil {
					return fmt.Errorf("spectrogram: chunk %d: %w", i, err)
				}
				frames[i] = mag
				progress.step()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return frames, backends[0], nil
}

type tracker struct {
	mu    sync.Mutex
	fn    ProgressFunc
	done  int
	total int
}

func newTracker(fn ProgressFunc, total int) *tracker {
	return &tracker{fn: fn, total: total}
}

func (t *tracker) step() {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	t.fn(t.done, t.total)
}
