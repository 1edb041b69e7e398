package log

import (
	"context"
	"log/slog"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// NewContext returns a copy of ctx carrying logger
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// Lookup returns the logger carried by ctx, if any.
func Lookup(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(LoggerContextKey).(*Logger)
	return logger, ok && logger != nil
}

// FromContext extracts a logger from the context
func FromContext(ctx context.Context) *Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}
	return wrap(slog.Default(), "unknown")
}

// Ctx returns the logger carried by ctx under l's component, so attributes
// the caller attached (such as the command) reach component logs. Without
// one it returns l.
func (l *Logger) Ctx(ctx context.Context) *Logger {
	if scoped, ok := Lookup(ctx); ok {
		return scoped.WithComponent(l.component)
	}
	return l
}
