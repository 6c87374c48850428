// Package logging configures structured logging for the rutval CLI
// using Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// fd is the subset of *os.File needed to detect a terminal.
type fd interface {
	Fd() uintptr
}

// New returns a logger writing to w at the given level. When w is a
// terminal the output is colorized and compact; otherwise it is plain
// logfmt suitable for capture.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if f, ok := w.(fd); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup installs a logger built by New as the process default and
// returns it. verbose lowers the level to debug.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := New(w, level)
	slog.SetDefault(log)
	return log
}
