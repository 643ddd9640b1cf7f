package vecnd

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecnd-specific context.
// This provides structured logging with consistent field names for
// applications embedding the library.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBatch logs a batch operation over count vector pairs.
func (l *Logger) LogBatch(ctx context.Context, op string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch operation failed",
			"op", op,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch operation completed",
			"op", op,
			"count", count,
		)
	}
}

// LogAggregate logs an aggregate operation (centroid, weighted average).
func (l *Logger) LogAggregate(ctx context.Context, op string, count, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "aggregate failed",
			"op", op,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "aggregate completed",
			"op", op,
			"count", count,
			"dimension", dimension,
		)
	}
}
