// Package logging sets up the structured logger shared by the journal
// commands.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs New(w, verbose) as the process default and returns it.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	l := New(w, verbose)
	slog.SetDefault(l)
	return l
}
