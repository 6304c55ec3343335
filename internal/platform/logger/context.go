package logger

import (
	"context"
	"log/slog"
)

// loggerKey is the context key for request-scoped loggers.
type loggerKey struct{}

// WithLogger returns a context carrying the given logger. Panics if
// the logger is nil; callers must pass a real logger.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		// ALLOW-PANIC: programmer error, not a runtime condition
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext retrieves the logger from the context, falling back to
// slog.Default when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the provided default. Handlers use this so component loggers
// survive when no request-scoped logger was installed.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return log
		}
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
