package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		t.Run(env, func(t *testing.T) {
			err := InitLogger(&LogConfig{Level: "debug", Environment: env, ServiceName: "storefront"})
			require.NoError(t, err)
			assert.NotNil(t, GetLogger())
			assert.True(t, GetLogger().Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	l := zap.New(core)

	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestMiddlewareLogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(EchoKey, zap.New(core))
			return next(c)
		}
	})
	e.Use(Middleware("/health"))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/things", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, logs.Len())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/things", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP Request", entry.Message)
	assert.Equal(t, int64(http.StatusTeapot), entry.ContextMap()["status"])
}
