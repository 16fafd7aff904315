package config

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/internal/imagesink"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]string{"song.wav"}, env(nil), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "song.wav", c.Input)
	assert.Equal(t, "song.wav-s512-o441-p4.png", c.Output)
	assert.Equal(t, 512, c.Stride)
	assert.Equal(t, 441, c.Offset)
	assert.Equal(t, 4, c.Power)
	assert.True(t, c.Windowing)
	assert.Equal(t, spectrogram.PolicyClamp, c.Policy)
	assert.Equal(t, spectrum.BackendAuto, c.Backend)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Positive(t, c.Workers)
	require.NoError(t, c.Validate())
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-s", "1024", "-offset", "256", "-p", "2",
		"-f", "out.bmp", "-window=false", "-policy", "maskfill",
		"-backend", "gonum", "-workers", "3", "-stats", "-v", "-log-json",
		"in.wav",
	}
	c, err := Parse(args, env(nil), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 1024, c.Stride)
	assert.Equal(t, 256, c.Offset)
	assert.Equal(t, 2, c.Power)
	assert.Equal(t, "out.bmp", c.Output)
	assert.False(t, c.Windowing)
	assert.Equal(t, spectrogram.PolicyMaskFill, c.Policy)
	assert.Equal(t, spectrum.BackendGonum, c.Backend)
	assert.Equal(t, 3, c.Workers)
	assert.True(t, c.Stats)
	assert.True(t, c.LogJSON)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestPrecedence(t *testing.T) {
	vars := env(map[string]string{
		EnvStride:   "2048",
		EnvOffset:   "1000",
		EnvPolicy:   "maskfill",
		EnvLogLevel: "warn",
	})

	c, err := Parse([]string{"-stride", "64", "a.wav"}, vars, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 64, c.Stride, "flag beats env")
	assert.Equal(t, 1000, c.Offset, "env beats default")
	assert.Equal(t, spectrogram.PolicyMaskFill, c.Policy)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
	assert.Equal(t, "a.wav-s64-o1000-p4.png", c.Output)
}

func TestFromEnvRejectsMalformed(t *testing.T) {
	for key, value := range map[string]string{
		EnvStride:   "many",
		EnvWindow:   "sometimes",
		EnvPolicy:   "floor",
		EnvBackend:  "fftw",
		EnvLogLevel: "loud",
	} {
		_, err := FromEnv(Default(), env(map[string]string{key: value}))
		assert.ErrorIs(t, err, spectrogram.ErrInvalidParameter, key)
	}
}

func TestParseUsageErrors(t *testing.T) {
	var usage bytes.Buffer
	_, err := Parse(nil, env(nil), &usage)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, usage.String(), "Usage: spectrogram")

	_, err = Parse([]string{"a.wav", "b.wav"}, env(nil), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = Parse([]string{"-stride", "x", "a.wav"}, env(nil), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = Parse([]string{"-h"}, env(nil), &bytes.Buffer{})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestValidate(t *testing.T) {
	base, err := Parse([]string{"a.wav"}, env(nil), &bytes.Buffer{})
	require.NoError(t, err)

	bad := base
	bad.Offset = 0
	assert.ErrorIs(t, bad.Validate(), spectrogram.ErrInvalidParameter)

	bad = base
	bad.Stride = 500
	bad.Backend = spectrum.BackendAlgoFFT
	assert.ErrorIs(t, bad.Validate(), spectrogram.ErrInvalidParameter)

	bad = base
	bad.Output = "a.svg"
	assert.ErrorIs(t, bad.Validate(), imagesink.ErrUnsupportedFormat)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvPower+"=7\n"), 0o600))
	t.Setenv(EnvPower, "")
	require.NoError(t, os.Unsetenv(EnvPower))

	require.NoError(t, LoadDotEnv(path))
	c, err := FromEnv(Default(), os.Getenv)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Power)
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "dir/x.wav-s256-o128-p3.png", DefaultOutputPath("dir/x.wav", 256, 128, 3))
}
