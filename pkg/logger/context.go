package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ctxKey struct{}

// EchoKey is the echo.Context key RequestIDMiddleware stores the
// request-scoped logger under
const EchoKey = "logger"

// FromContext returns the logger carried by ctx. Store hooks run with the
// request context, so persistence logs keep the request id. Without one
// the global logger is used.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}

// WithContext returns a copy of ctx that carries l
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromEcho returns the request-scoped logger of c, or the global logger
// for requests that bypassed RequestIDMiddleware
func FromEcho(c echo.Context) *zap.Logger {
	if l, ok := c.Get(EchoKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}
