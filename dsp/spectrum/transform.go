package spectrum

import (
	"fmt"
	"math"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation used by a [Transformer].
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two lengths and gonum otherwise.
	BackendAuto Backend = iota
	// BackendAlgoFFT requires a power-of-two length.
	BackendAlgoFFT
	// BackendGonum handles any length.
	BackendGonum
)

// String returns the backend name accepted by [ParseBackend].
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name to its value.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return BackendAuto, nil
	case "algofft", "algo-fft":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return BackendAuto, fmt.Errorf("spectrum: unknown backend %q", name)
	}
}

// Option configures a Transformer.
type Option func(*config)

type config struct {
	backend Backend
}

func defaultConfig() config {
	return config{backend: BackendAuto}
}

// WithBackend selects the FFT backend.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// Transformer computes magnitude spectra of fixed-length real frames.
//
// A Transformer owns scratch buffers and must not be used concurrently;
// create one per goroutine.
type Transformer struct {
	length  int
	backend Backend

	plan *algofft.Plan[complex128]
	fft  *fourier.FFT

	in  []complex128
	out []complex128
}

// NewTransformer prepares a transform for frames of the given length.
func NewTransformer(length int, opts ...Option) (*Transformer, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := &Transformer{length: length}

	switch cfg.backend {
	case BackendAuto:
		if isPowerOf2(length) && t.initAlgoFFT() == nil {
			break
		}
		t.initGonum()
	case BackendAlgoFFT:
		if !isPowerOf2(length) {
			return nil, fmt.Errorf("%w: algofft needs a power of two, got %d", ErrBackendUnsupported, length)
		}
		if err := t.initAlgoFFT(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBackendUnsupported, err)
		}
	case BackendGonum:
		t.initGonum()
	default:
		return nil, fmt.Errorf("spectrum: unknown backend %v", cfg.backend)
	}

	return t, nil
}

func (t *Transformer) initAlgoFFT() error {
	if t.length == 1 {
		t.backend = BackendAlgoFFT
		return nil
	}

	plan, err := algofft.NewPlan64(t.length)
	if err != nil {
		return fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	t.backend = BackendAlgoFFT
	t.plan = plan
	t.in = make([]complex128, t.length)
	t.out = make([]complex128, t.length)
	return nil
}

func (t *Transformer) initGonum() {
	t.backend = BackendGonum
	if t.length == 1 {
		return
	}

	t.fft = fourier.NewFFT(t.length)
	t.out = make([]complex128, BinCount(t.length))
}

// Len returns the frame length.
func (t *Transformer) Len() int { return t.length }

// Bins returns the number of output bins, floor(Len()/2)+1.
func (t *Transformer) Bins() int { return BinCount(t.length) }

// Backend returns the backend that was selected.
func (t *Transformer) Backend() Backend { return t.backend }

// Transform returns the magnitude of the one-sided DFT of frame.
//
// The returned slice is newly allocated and owned by the caller.
func (t *Transformer) Transform(frame []float64) ([]float64, error) {
	if len(frame) != t.length {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(frame), t.length)
	}

	mag := make([]float64, t.Bins())

	// A single-sample DFT is the sample itself.
	if t.length == 1 {
		mag[0] = math.Abs(frame[0])
		return mag, nil
	}

	var bins []complex128
	switch t.backend {
	case BackendAlgoFFT:
		for i, v := range frame {
			t.in[i] = complex(v, 0)
		}
		if err := t.plan.Forward(t.out, t.in); err != nil {
			return nil, fmt.Errorf("spectrum: forward transform: %w", err)
		}
		bins = t.out[:len(mag)]
	default:
		t.out = t.fft.Coefficients(t.out, frame)
		bins = t.out
	}

	magnitudeInto(mag, bins)
	return mag, nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Supports reports whether backend b can transform frames of the given length.
func Supports(b Backend, length int) bool {
	if length < 1 {
		return false
	}
	switch b {
	case BackendAuto, BackendGonum:
		return true
	case BackendAlgoFFT:
		return isPowerOf2(length)
	default:
		return false
	}
}
