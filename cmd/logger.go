package cmd

import (
	"io"
	"log/slog"
)

// NewLogger returns the JSON logger shared by every component.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
