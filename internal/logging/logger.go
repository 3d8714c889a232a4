package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// New creates a configured application logger.
// Callers pass Stderr to keep logs apart from the interactive UI on Stdout.
// Records are rendered by charmbracelet/log with short timestamps (e.g. "14:32:01.45").
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.Level(level),
	})
	return slog.New(handler)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
