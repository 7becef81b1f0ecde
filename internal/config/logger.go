package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the logger for a run. Without Debug everything is
// discarded. With Debug, CLI runs log text to errOut; when toFile is set
// (the interactive UI owns the terminal) JSON lines go to LogPath instead.
// The returned close func is never nil.
func (c *Config) NewLogger(errOut io.Writer, toFile bool) (*slog.Logger, func() error) {
	noop := func() error { return nil }
	if !c.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if !toFile {
		return slog.New(slog.NewTextHandler(errOut, opts)), noop
	}
	if err := c.EnsureDir(); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop
	}
	f, err := os.OpenFile(c.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop
	}
	return slog.New(slog.NewJSONHandler(f, opts)), f.Close
}
