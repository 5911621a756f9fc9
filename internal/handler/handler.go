package handler

import (
	"context"
	"net/http"

	"storefront-service/internal/admin"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/settings"
	"storefront-service/internal/stylist"
	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Deps are the stores and services the handlers read and mutate
type Deps struct {
	Catalog  *catalog.Store
	Carts    *cart.Registry
	Settings *settings.Store
	Admin    *admin.Service
	Sessions *admin.Sessions
	Tokens   *jwtutil.JWTUtil
	Stylist  *stylist.Conversations
	// Ready reports backend readiness; nil means always ready
	Ready func(ctx context.Context) error
}

// Handler serves the storefront API
type Handler struct {
	Deps
}

// NewHandler creates a handler over deps
func NewHandler(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

// requestContext carries the request-scoped logger into store hooks
func requestContext(c echo.Context) context.Context {
	return logger.WithContext(c.Request().Context(), logger.FromEcho(c))
}

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /ready
func (h *Handler) Readiness(c echo.Context) error {
	if h.Ready != nil {
		if err := h.Ready(c.Request().Context()); err != nil {
			logger.FromEcho(c).Warn("Storage not ready")
			return errorJSON(c, http.StatusServiceUnavailable, "storage not ready")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
