// Command spectrogram renders a grayscale spectrogram image from a WAV file.
//
// Usage:
//
//	spectrogram [flags] <wav-file>
//
// Time runs left to right and frequency bottom to top. Without -f the image
// is written next to the input as <wav-file>-s<stride>-o<offset>-p<power>.png.
//
// Examples:
//
//	spectrogram speech.wav
//	spectrogram -s 1024 -o 256 -p 2 -f speech.bmp speech.wav
//	spectrogram -policy maskfill -stats music.wav
//
// Settings can also come from SPECTROGRAM_* environment variables or a .env
// file in the working directory; flags take precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/internal/config"
	"github.com/cwbudde/algo-spectrogram/internal/imagesink"
	"github.com/cwbudde/algo-spectrogram/internal/logging"
	"github.com/cwbudde/algo-spectrogram/internal/progress"
	"github.com/cwbudde/algo-spectrogram/internal/wavio"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	log := logging.New(stderr, logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	if err := cfg.Validate(); err != nil {
		log.Error("Invalid settings.", logging.Error(err))
		if errors.Is(err, imagesink.ErrUnsupportedFormat) {
			return exitFailure
		}
		return exitUsage
	}

	log.Info("Settings.", "stride", cfg.Stride, "offset", cfg.Offset, "power", cfg.Power,
		"policy", cfg.Policy, "backend", cfg.Backend, "windowing", cfg.Windowing)

	rec, err := wavio.Read(cfg.Input)
	if err != nil {
		log.Error("Failed to read wav file.", "path", cfg.Input, logging.Error(err))
		return exitFailure
	}
	log.Info("Wav loaded.", "sample_rate", rec.SampleRate, "bit_depth", rec.BitDepth,
		"frames", rec.Frames(), "channels", len(rec.Channels))

	stream, err := rec.Mono()
	if err != nil {
		log.Error("Failed to collapse channels.", logging.Error(err))
		return exitFailure
	}
	log.Info("Mono stream.", "frames", len(stream), "channels", 1)

	bar := progress.New(stderr, log)
	opts := append(cfg.Options(),
		spectrogram.WithProgress(bar.Update),
		spectrogram.WithWarningHandler(func(w error) {
			bar.Finish()
			log.Warn("Pipeline warning.", logging.Error(w))
		}),
	)
	res, err := spectrogram.Compute(stream, opts...)
	bar.Finish()
	if err != nil {
		log.Error("Failed to compute spectrogram.", logging.Error(err))
		if errors.Is(err, spectrogram.ErrInvalidParameter) {
			return exitUsage
		}
		return exitFailure
	}
	log.Info("Spectrogram computed.", "slices", res.Chunks, "bins", res.Bins,
		"backend", res.Backend, "degenerate", res.Degenerate)

	if cfg.Stats {
		if err := printStats(stdout, res.Summary(float64(rec.SampleRate))); err != nil {
			log.Error("Failed to write statistics.", logging.Error(err))
			return exitFailure
		}
	}

	log.Info("Saving image.", "path", cfg.Output)
	if err := imagesink.Save(cfg.Output, res.Image()); err != nil {
		log.Error("Failed to save image.", "path", cfg.Output, logging.Error(err))
		return exitFailure
	}
	return exitOK
}

func printStats(w io.Writer, slices []spectrogram.SliceStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Slice\tStart\tPeak Bin\tPeak [Hz]\tCentroid [Hz]\tFlatness\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t--------\t---------\t-------------\t--------\n"); err != nil {
		return err
	}
	for _, s := range slices {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%.1f\t%.1f\t%.4f\n",
			s.Index, s.Start, s.MaxBin, s.PeakHz, s.Centroid, s.Flatness); err != nil {
			return err
		}
	}
	return tw.Flush()
}
