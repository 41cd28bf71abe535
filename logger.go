package podvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with podvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithElementType adds the element type and size to the logger.
func (l *Logger) WithElementType(name string, size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_type", name, "elem_size", size),
	}
}

// LogAllocate logs a block allocation.
func (l *Logger) LogAllocate(capacity, bytes int, err error) {
	if err != nil {
		l.Error("allocation failed",
			"capacity", capacity,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Debug("block allocated",
			"capacity", capacity,
			"bytes", bytes,
		)
	}
}

// LogGrow logs a capacity growth.
func (l *Logger) LogGrow(oldCapacity, newCapacity, length int, err error) {
	if err != nil {
		l.Error("grow failed",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("grow completed",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"length", length,
		)
	}
}

// LogRelease logs a block being returned to its allocator.
func (l *Logger) LogRelease(capacity, bytes int, err error) {
	if err != nil {
		l.Error("release failed",
			"capacity", capacity,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Debug("block released",
			"capacity", capacity,
			"bytes", bytes,
		)
	}
}
