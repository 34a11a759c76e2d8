package go_sball

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names used by the tree.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogBuild logs the construction of a tree.
func (l *Logger) LogBuild(ctx context.Context, points, leafSize, nodes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "building tree failed",
			"points", points,
			"leaf_size", leafSize,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "building tree",
		"points", points,
		"leaf_size", leafSize,
		"nodes", nodes,
	)
}

// LogQuery logs a batch query.
func (l *Logger) LogQuery(ctx context.Context, queries, k, workers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "searching data failed",
			"queries", queries,
			"k", k,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "searching data",
		"queries", queries,
		"k", k,
		"workers", workers,
	)
}
