package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to out. debug lowers the level to Debug.
func New(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
