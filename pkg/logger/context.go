package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// With derives a request-scoped logger carrying the given attributes and
// stores it on the context. Later calls stack attributes.
func With(ctx context.Context, args ...any) context.Context {
	return context.WithValue(ctx, contextKey{}, From(ctx).With(args...))
}

// From returns the request-scoped logger, falling back to the process
// logger when none was attached.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
