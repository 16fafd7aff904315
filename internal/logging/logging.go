// Package logging builds the slog logger used by the command line tool.
package logging

import (
	"io"
	"log/slog"

	"github.com/mdobak/go-xerrors"
)

// Options selects the record level and encoding.
type Options struct {
	Level slog.Level
	JSON  bool
}

// New returns a logger writing text or JSON records to w.
func New(w io.Writer, opts Options) *slog.Logger {
	ho := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, ho))
	}
	return slog.New(slog.NewTextHandler(w, ho))
}

// Error returns the "error" attribute for err, wrapped with a stack trace
// captured at the call site.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.Any("error", xerrors.New(err))
}
