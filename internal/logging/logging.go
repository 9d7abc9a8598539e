// Package logging constructs the process logger. The logger is built once
// in the command layer and handed to the components that need it; nothing
// in this module logs through a package-level global.
package logging

import (
	"log/slog"
	"os"
)

// New returns a text logger writing timestamped, leveled lines to stderr.
// verbose lowers the level to debug.
func New(verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level(verbose),
	}))
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
