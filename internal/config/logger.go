package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Debug messages are only
// emitted when the configuration enables debug.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
