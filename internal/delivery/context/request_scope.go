// Package context carries request-scoped values (request id, logger) from the HTTP edge down to
// the actions and usecases, which only see a context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID carries the request id in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey is where the id is kept on echo.Context for the response writer.
const echoRequestIDKey = "menuboard.request_id"

// scopeKey is unexported so no other package can read or overwrite scope values.
type scopeKey uint8

const (
	requestIDKey scopeKey = iota + 1
	loggerKey
)

func lookup[T comparable](ctx context.Context, key scopeKey) (T, bool) {
	var zero T
	value, ok := ctx.Value(key).(T)

	return value, ok && value != zero
}

// WithRequest binds a request id and the logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return WithLogger(WithRequestID(ctx, requestID), logger)
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the bound request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestIDKey)

	return id
}

// SetRequestID keeps requestID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID prefers the id on the echo context, then the one on the request context.
// A response written before the middleware ran gets a fresh id.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := lookup[*slog.Logger](ctx, loggerKey); ok {
		return logger
	}

	return fallback
}
