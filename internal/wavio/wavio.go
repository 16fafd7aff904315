// Package wavio reads PCM WAV files into per-channel float sample streams.
//
// Samples keep their integer PCM scale (a 16-bit file yields values in
// [-32768, 32767]); they are not normalized to [-1, 1].
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
)

var (
	// ErrInvalidFile reports input that is not a readable PCM WAV stream.
	ErrInvalidFile = errors.New("wavio: not a valid WAV file")
	// ErrUnsupportedInput reports a WAV layout the pipeline cannot consume.
	// It wraps spectrogram.ErrUnsupportedInput.
	ErrUnsupportedInput = fmt.Errorf("wavio: %w", spectrogram.ErrUnsupportedInput)
)

// Audio is a decoded recording.
type Audio struct {
	SampleRate int
	BitDepth   int
	// Channels holds one sample slice per channel, de-interleaved.
	Channels [][]float64
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Mono collapses the recording to one stream, averaging stereo channels.
func (a *Audio) Mono() ([]float64, error) {
	return spectrogram.Downmix(a.Channels...)
}

// Read opens and decodes the WAV file at path.
func Read(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return a, nil
}

// Decode reads a whole PCM WAV stream. Mono and stereo files are accepted.
func Decode(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: read PCM: %w", ErrInvalidFile, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: missing format chunk", ErrInvalidFile)
	}

	chans := buf.Format.NumChannels
	if chans > 2 {
		return nil, fmt.Errorf("%w: %d channels, want 1 or 2", ErrUnsupportedInput, chans)
	}

	return &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   buf.SourceBitDepth,
		Channels:   deinterleave(buf.Data, chans),
	}, nil
}

func deinterleave(data []int, chans int) [][]float64 {
	frames := len(data) / chans
	out := make([][]float64, chans)
	for c := range out {
		out[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < chans; c++ {
			out[c][i] = float64(data[i*chans+c])
		}
	}
	return out
}

// Write encodes interleaved integer PCM samples as a WAV file at path.
func Write(path string, sampleRate, bitDepth, channels int, interleaved []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("wavio: close %s: %w", path, cerr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           interleaved,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}
	return nil
}
