package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionSet map[string]bool

func (s sessionSet) Active(id string) bool { return s[id] }

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware)
	e.GET("/", func(c echo.Context) error {
		_, ok := c.Get(logger.EchoKey).(*zap.Logger)
		assert.True(t, ok)
		return c.String(http.StatusOK, c.Get("request_id").(string))
	})

	t.Run("generates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(echo.HeaderXRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	util := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "k", ExpirationHours: 1})
	active, err := util.GenerateToken("open")
	require.NoError(t, err)
	locked, err := util.GenerateToken("closed")
	require.NoError(t, err)

	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		id, ok := SessionIDFromContext(c)
		require.True(t, ok)
		return c.String(http.StatusOK, id)
	}, AdminAuthMiddleware(util, sessionSet{"open": true}))

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Token " + active, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"locked session", "Bearer " + locked, http.StatusUnauthorized},
		{"ok", "Bearer " + active, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "open", rec.Body.String())
			}
		})
	}
}
