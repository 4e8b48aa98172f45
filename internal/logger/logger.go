package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. It starts with text output at info level
// so packages can log during tests without any setup; main replaces it via
// Initialize once config is loaded.
var Log *slog.Logger

func init() {
	Initialize("info", false)
}

// Initialize rebuilds the global logger with the given level and output
// format and installs it as slog's default.
func Initialize(level string, useJSON bool) {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
	}

	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
