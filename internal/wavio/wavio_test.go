package wavio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

func TestRoundTripMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	samples := testutil.PCM16Sine(440, 8000, 0.5, 800)
	require.NoError(t, Write(path, 8000, 16, 1, samples))

	a, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, 8000, a.SampleRate)
	assert.Equal(t, 16, a.BitDepth)
	require.Len(t, a.Channels, 1)
	require.Equal(t, 800, a.Frames())
	for i, v := range samples {
		require.Equal(t, float64(v), a.Channels[0][i], "sample %d", i)
	}
}

func TestStereoDeinterleavesAndDownmixes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	left := []int{100, -200, 300, 0}
	right := []int{300, 200, -300, 0}
	require.NoError(t, Write(path, 44100, 16, 2, testutil.Interleave(left, right)))

	a, err := Read(path)
	require.NoError(t, err)
	require.Len(t, a.Channels, 2)
	assert.Equal(t, []float64{100, -200, 300, 0}, a.Channels[0])
	assert.Equal(t, []float64{300, 200, -300, 0}, a.Channels[1])

	mono, err := a.Mono()
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 0, 0, 0}, mono)
}

func TestRejectsMultichannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.wav")
	require.NoError(t, Write(path, 8000, 16, 4, make([]int, 16)))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
	assert.True(t, errors.Is(err, spectrogram.ErrUnsupportedInput))
}

func TestRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a riff file")))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
