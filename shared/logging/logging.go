// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger.
var Logger *slog.Logger

func init() {
	Setup(os.Stderr, os.Getenv("LOG_LEVEL"))
}

// Setup replaces the default logger with a text handler at the given level
// (debug|info|warn|error).
func Setup(w io.Writer, level string) {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
