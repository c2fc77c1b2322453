package slogutil

import (
	"io"
	"log/slog"
)

// LevelSilent is above every standard level, so nothing is logged.
const LevelSilent = slog.Level(100)

// NewLogger creates a new slog.Logger writing lines in the Handler format.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that discards all output.
// Useful for tests or when logging should be completely suppressed.
func NewDiscardLogger() *slog.Logger {
	return NewLogger(io.Discard, LevelSilent)
}

// LevelFromVerbosity converts the --verbose count to a slog.Level.
// - verbosity<=0: silent, stderr only carries the error line
// - verbosity=1: info
// - verbosity>=2: debug
func LevelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return LevelSilent
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// ForVerbosity returns the logger for a --verbose count. A count of zero
// gets a discard logger regardless of w.
func ForVerbosity(w io.Writer, verbosity int) *slog.Logger {
	if verbosity <= 0 || w == nil {
		return NewDiscardLogger()
	}
	return NewLogger(w, LevelFromVerbosity(verbosity))
}
