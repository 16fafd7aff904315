// Package progress reports transform progress on a terminal line or, when
// the destination is not a terminal, as debug log records.
package progress

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/term"
)

// Reporter renders "done/total fft, pct%" updates. Its Update method has the
// signature of spectrogram.ProgressFunc; calls must not overlap.
type Reporter struct {
	w       io.Writer
	tty     bool
	log     *slog.Logger
	lastPct int
	active  bool
}

type fder interface {
	Fd() uintptr
}

// New returns a Reporter for w. A carriage-return line is drawn only when w
// is a terminal; otherwise every tenth percent is logged at debug level.
func New(w io.Writer, log *slog.Logger) *Reporter {
	tty := false
	if f, ok := w.(fder); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return NewWithMode(w, tty, log)
}

// NewWithMode returns a Reporter with an explicit terminal mode.
func NewWithMode(w io.Writer, tty bool, log *slog.Logger) *Reporter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{w: w, tty: tty, log: log, lastPct: -1}
}

// Update records that done of total chunks are transformed.
func (r *Reporter) Update(done, total int) {
	if total <= 0 {
		return
	}
	pct := done * 100 / total

	if r.tty {
		if pct == r.lastPct && done != total {
			return
		}
		r.lastPct = pct
		r.active = true
		fmt.Fprintf(r.w, "\r%d/%d fft, %d%%", done, total, pct)
		return
	}

	if pct/10 == r.lastPct/10 && r.lastPct >= 0 && done != total {
		return
	}
	r.lastPct = pct
	r.log.Debug("fft progress", "done", done, "total", total, "percent", pct)
}

// Finish terminates the terminal line, if one was drawn.
func (r *Reporter) Finish() {
	if r.tty && r.active {
		fmt.Fprintln(r.w)
		r.active = false
	}
}
