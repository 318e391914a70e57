package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// fdWriter is implemented by *os.File and anything else backed by a file descriptor
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// NewTerminalHandler creates a human readable slog handler writing to w.
//
// Colors are only emitted when w is an interactive terminal, so redirected
// output (files, pipes, CI logs) stays free of escape sequences.
func NewTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !IsTerminal(w),
	})
}

// IsTerminal reports whether w is connected to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
