package middleware

import (
	"net/http"
	"strings"

	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const sessionKey = "admin_session"

// SessionChecker reports whether an admin console session is still unlocked
type SessionChecker interface {
	Active(id string) bool
}

// AdminAuthMiddleware requires a valid admin bearer token whose console
// session is still unlocked
func AdminAuthMiddleware(jwtUtil *jwtutil.JWTUtil, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Warn("Invalid Authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid JWT token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			if !sessions.Active(claims.SessionID) {
				log.Info("Admin session is locked", zap.String("session_id", claims.SessionID))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "admin console is locked"})
			}

			c.Set(sessionKey, claims.SessionID)
			return next(c)
		}
	}
}

// SessionIDFromContext returns the admin session id set by AdminAuthMiddleware
func SessionIDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(sessionKey).(string)
	return id, ok
}
