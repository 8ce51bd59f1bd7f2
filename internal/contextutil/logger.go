package contextutil

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// LoggerFromContext extracts a logger from context if available, otherwise
// returns the default logger. This helper can be used by any package that
// needs to extract a logger from context.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctxLogger := ctx.Value(loggerKey); ctxLogger != nil {
		if l, ok := ctxLogger.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRunID returns a context whose logger carries the ingest run ID, so
// every log entry of one run can be correlated.
func WithRunID(ctx context.Context, runID string) context.Context {
	return WithLogger(ctx, LoggerFromContext(ctx).With("run_id", runID))
}
