package flowkit

import (
	"context"

	"github.com/google/uuid"
	"github.com/parallax-labs/lib-flowkit/flowkit/log"
)

type contextKey string

const (
	loggerContextKey    contextKey = "flowkit_logger"
	requestIDContextKey contextKey = "flowkit_request_id"
)

// ContextWithLogger returns a context carrying the given logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext extracts the logger from the context.
// Returns a no-op logger when none is attached so call sites never nil-check.
//
//nolint:ireturn
func LoggerFromContext(ctx context.Context) log.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(log.Logger); ok && logger != nil {
		return logger
	}

	return &log.NopLogger{}
}

// ContextWithRequestID returns a context carrying the given request ID.
// An empty id is replaced with a freshly generated UUID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}

	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns the empty string when none is attached.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}

	return ""
}
