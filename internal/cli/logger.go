package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Verbosity levels selected by repeating -v.
const (
	VerbosityNormal = iota
	VerbosityDebug
	VerbosityTrace
)

// NewLogger creates a structured logger on w, normally os.Stderr. When w is a
// terminal it uses slog.TextHandler; when piped or redirected it emits JSON
// so runs can be collected by scripts.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	terminal := false
	if f, ok := w.(*os.File); ok {
		terminal = term.IsTerminal(int(f.Fd()))
	}
	return newLogger(w, terminal, level)
}

func newLogger(w io.Writer, terminal bool, level slog.Leveler) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// LevelFor combines the configured level with the -v count. Any -v forces
// debug; the configured level applies otherwise.
func LevelFor(configured slog.Level, verbosity int) slog.Level {
	if verbosity >= VerbosityDebug {
		return slog.LevelDebug
	}
	return configured
}
