// Package config resolves command-line settings for the spectrogram tool.
//
// Values are layered: built-in defaults, then SPECTROGRAM_* environment
// variables (optionally seeded from a .env file), then flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/internal/imagesink"
)

// Environment variable names.
const (
	EnvStride   = "SPECTROGRAM_STRIDE"
	EnvOffset   = "SPECTROGRAM_OFFSET"
	EnvPower    = "SPECTROGRAM_POWER"
	EnvWindow   = "SPECTROGRAM_WINDOW"
	EnvPolicy   = "SPECTROGRAM_POLICY"
	EnvBackend  = "SPECTROGRAM_BACKEND"
	EnvWorkers  = "SPECTROGRAM_WORKERS"
	EnvLogLevel = "SPECTROGRAM_LOG_LEVEL"
	EnvLogJSON  = "SPECTROGRAM_LOG_JSON"
)

// ErrUsage reports malformed command lines.
var ErrUsage = errors.New("config: usage")

// Config holds every setting of one run.
type Config struct {
	Input  string
	Output string

	Stride    int
	Offset    int
	Power     int
	Windowing bool
	Policy    spectrogram.Policy
	Backend   spectrum.Backend
	Workers   int

	Stats    bool
	LogLevel slog.Level
	LogJSON  bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Stride:    spectrogram.DefaultStride,
		Offset:    spectrogram.DefaultOffset,
		Power:     spectrogram.DefaultPower,
		Windowing: true,
		Policy:    spectrogram.PolicyClamp,
		Backend:   spectrum.BackendAuto,
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  slog.LevelInfo,
	}
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// FromEnv overlays set environment variables onto base. Unset or empty
// variables keep the base value; malformed values are errors.
func FromEnv(base Config, getenv func(string) string) (Config, error) {
	c := base
	var err error

	if c.Stride, err = envInt(getenv, EnvStride, c.Stride); err != nil {
		return base, err
	}
	if c.Offset, err = envInt(getenv, EnvOffset, c.Offset); err != nil {
		return base, err
	}
	if c.Power, err = envInt(getenv, EnvPower, c.Power); err != nil {
		return base, err
	}
	if c.Workers, err = envInt(getenv, EnvWorkers, c.Workers); err != nil {
		return base, err
	}
	if c.Windowing, err = envBool(getenv, EnvWindow, c.Windowing); err != nil {
		return base, err
	}
	if c.LogJSON, err = envBool(getenv, EnvLogJSON, c.LogJSON); err != nil {
		return base, err
	}
	if v := getenv(EnvPolicy); v != "" {
		if c.Policy, err = spectrogram.ParsePolicy(v); err != nil {
			return base, fmt.Errorf("config: %s: %w", EnvPolicy, err)
		}
	}
	if v := getenv(EnvBackend); v != "" {
		if c.Backend, err = parseBackend(v); err != nil {
			return base, fmt.Errorf("config: %s: %w", EnvBackend, err)
		}
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return base, fmt.Errorf("config: %s: %w: %w", EnvLogLevel, spectrogram.ErrInvalidParameter, err)
		}
	}
	return c, nil
}

// Parse resolves a full configuration from defaults, getenv and args
// (without the program name). Usage goes to usage when flags are malformed
// or -h is given; the latter returns flag.ErrHelp.
func Parse(args []string, getenv func(string) string, usage io.Writer) (Config, error) {
	c, err := FromEnv(Default(), getenv)
	if err != nil {
		return c, err
	}

	flags := flag.NewFlagSet("spectrogram", flag.ContinueOnError)
	flags.SetOutput(usage)

	flags.IntVar(&c.Stride, "s", c.Stride, "samples per time slice (shorthand)")
	flags.IntVar(&c.Stride, "stride", c.Stride, "samples per time slice; bigger gives more frequency bins")
	flags.IntVar(&c.Offset, "o", c.Offset, "samples between slice starts (shorthand)")
	flags.IntVar(&c.Offset, "offset", c.Offset, "samples between slice starts; bigger gives fewer time slices")
	flags.IntVar(&c.Power, "p", c.Power, "emphasis power (shorthand)")
	flags.IntVar(&c.Power, "power", c.Power, "raise intensities to this power; bigger darkens quiet regions")
	flags.StringVar(&c.Output, "f", "", "output image path (shorthand)")
	flags.StringVar(&c.Output, "image", "", "output image path; extension selects the format")
	flags.BoolVar(&c.Windowing, "window", c.Windowing, "apply a Hamming window to each slice")
	policy := flags.String("policy", c.Policy.String(), "handling of magnitudes below 1: clamp or maskfill")
	backend := flags.String("backend", c.Backend.String(), "FFT backend: auto, algofft or gonum")
	flags.IntVar(&c.Workers, "workers", c.Workers, "goroutines transforming slices")
	flags.BoolVar(&c.Stats, "stats", false, "print per-slice peak and centroid to stdout")
	verbose := flags.Bool("v", false, "log at debug level")
	flags.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "log JSON records")

	flags.Usage = func() {
		fmt.Fprintf(usage, "Usage: spectrogram [flags] <wav-file>\n\n")
		fmt.Fprintf(usage, "Generates a grayscale spectrogram image from a WAV file.\n")
		fmt.Fprintf(usage, "Supported image extensions: %s\n\n", strings.Join(imagesink.Extensions(), " "))
		fmt.Fprintf(usage, "Flags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return c, err
		}
		return c, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if c.Policy, err = spectrogram.ParsePolicy(*policy); err != nil {
		return c, err
	}
	if c.Backend, err = parseBackend(*backend); err != nil {
		return c, err
	}
	if *verbose {
		c.LogLevel = slog.LevelDebug
	}

	switch flags.NArg() {
	case 1:
		c.Input = flags.Arg(0)
	case 0:
		flags.Usage()
		return c, fmt.Errorf("%w: missing wav file argument", ErrUsage)
	default:
		flags.Usage()
		return c, fmt.Errorf("%w: expected one wav file, got %d arguments", ErrUsage, flags.NArg())
	}

	if c.Output == "" {
		c.Output = DefaultOutputPath(c.Input, c.Stride, c.Offset, c.Power)
	}
	return c, nil
}

// Validate checks the pipeline parameters and the output format.
func (c Config) Validate() error {
	if err := spectrogram.NewConfig(c.Options()...).Validate(); err != nil {
		return err
	}
	if err := imagesink.Supported(c.Output); err != nil {
		return err
	}
	return nil
}

// Options converts the settings into pipeline options.
func (c Config) Options() []spectrogram.Option {
	return []spectrogram.Option{
		spectrogram.WithStride(c.Stride),
		spectrogram.WithOffset(c.Offset),
		spectrogram.WithPower(c.Power),
		spectrogram.WithWindowing(c.Windowing),
		spectrogram.WithPolicy(c.Policy),
		spectrogram.WithBackend(c.Backend),
		spectrogram.WithWorkers(c.Workers),
	}
}

// DefaultOutputPath names the image after the input file and the settings
// used to render it.
func DefaultOutputPath(input string, stride, offset, power int) string {
	return fmt.Sprintf("%s-s%d-o%d-p%d.png", input, stride, offset, power)
}

func parseBackend(v string) (spectrum.Backend, error) {
	b, err := spectrum.ParseBackend(v)
	if err != nil {
		return b, fmt.Errorf("%w: %w", spectrogram.ErrInvalidParameter, err)
	}
	return b, nil
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("config: %s=%q: %w", key, v, spectrogram.ErrInvalidParameter)
	}
	return n, nil
}

func envBool(getenv func(string) string, key string, fallback bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("config: %s=%q: %w", key, v, spectrogram.ErrInvalidParameter)
	}
	return b, nil
}
