package spectrogram

import (
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-spectrogram/dsp/frame"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

// Defaults used by [DefaultConfig].
const (
	DefaultStride = 512
	DefaultOffset = 441
	DefaultPower  = 4
)

// ProgressFunc receives the number of transformed chunks and the total.
// Calls are serialized and done increases strictly from 1 to total.
type ProgressFunc func(done, total int)

// WarnFunc receives non-fatal conditions such as [ErrSamplesSkipped] and
// [ErrDegenerateRange].
type WarnFunc func(err error)

// Config holds pipeline parameters.
type Config struct {
	Stride    int // chunk length in samples
	Offset    int // distance between chunk starts
	Power     int // emphasis exponent
	Windowing bool
	Policy    Policy
	Backend   spectrum.Backend
	Workers   int
	Progress  ProgressFunc
	Warn      WarnFunc
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns stride 512, offset 441, power 4, Hamming windowing,
// the clamp policy, automatic backend selection and GOMAXPROCS workers.
func DefaultConfig() Config {
	return Config{
		Stride:    DefaultStride,
		Offset:    DefaultOffset,
		Power:     DefaultPower,
		Windowing: true,
		Policy:    PolicyClamp,
		Backend:   spectrum.BackendAuto,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithStride sets the chunk length.
func WithStride(n int) Option {
	return func(c *Config) { c.Stride = n }
}

// WithOffset sets the hop between chunk starts.
func WithOffset(n int) Option {
	return func(c *Config) { c.Offset = n }
}

// WithPower sets the emphasis exponent.
func WithPower(n int) Option {
	return func(c *Config) { c.Power = n }
}

// WithWindowing enables or disables the Hamming taper.
func WithWindowing(on bool) Option {
	return func(c *Config) { c.Windowing = on }
}

// WithPolicy selects the intensity scaling policy.
func WithPolicy(p Policy) Option {
	return func(c *Config) { c.Policy = p }
}

// WithBackend selects the FFT backend.
func WithBackend(b spectrum.Backend) Option {
	return func(c *Config) { c.Backend = b }
}

// WithWorkers sets the number of goroutines transforming chunks.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithProgress installs a progress callback.
func WithProgress(f ProgressFunc) Option {
	return func(c *Config) { c.Progress = f }
}

// WithWarningHandler installs a handler for non-fatal conditions.
func WithWarningHandler(f WarnFunc) Option {
	return func(c *Config) { c.Warn = f }
}

// Validate checks every parameter without touching any samples.
func (c Config) Validate() error {
	if c.Stride < 1 {
		return fmt.Errorf("%w: stride must be >= 1: %d", ErrInvalidParameter, c.Stride)
	}
	if c.Offset < 1 {
		return fmt.Errorf("%w: offset must be >= 1: %d", ErrInvalidParameter, c.Offset)
	}
	if c.Power < 1 {
		return fmt.Errorf("%w: power must be >= 1: %d", ErrInvalidParameter, c.Power)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1: %d", ErrInvalidParameter, c.Workers)
	}
	if c.Policy != PolicyClamp && c.Policy != PolicyMaskFill {
		return fmt.Errorf("%w: unknown policy %v", ErrInvalidParameter, c.Policy)
	}
	if !spectrum.Supports(c.Backend, c.Stride) {
		return fmt.Errorf("%w: backend %v cannot transform stride %d", ErrInvalidParameter, c.Backend, c.Stride)
	}
	return nil
}

func (c Config) windowType() window.Type {
	if c.Windowing {
		return window.TypeHamming
	}
	return window.TypeRectangular
}

func (c Config) skipsSamples() bool {
	return frame.SkipsSamples(c.Stride, c.Offset)
}

func (c Config) warn(err error) {
	if c.Warn != nil {
		c.Warn(err)
	}
}

// NewConfig applies opts to [DefaultConfig].
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
