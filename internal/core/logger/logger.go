// Package logger provides the structured logging engine for kepler.
// Uses log/slog: stderr always, plus an optional file sink.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger wraps slog.Logger. The report itself goes to stdout; log lines
// stay on stderr so they never interleave with report text.
type Logger struct {
	*slog.Logger
}

// Init initialises the global logger.
func Init(level, format, logFile string, debug bool) (*Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if debug {
		lvl = slog.LevelDebug
	}

	writers := []io.Writer{os.Stderr}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0750); err == nil {
			if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640); err == nil {
				writers = append(writers, f)
			}
		}
	}
	out := io.MultiWriter(writers...)

	opts := &slog.HandlerOptions{Level: lvl, AddSource: debug}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	base := slog.New(handler)
	slog.SetDefault(base)

	return &Logger{Logger: base}, nil
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
