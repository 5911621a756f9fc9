package middleware

import (
	"strconv"
	"time"

	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware adds prometheus metrics to track HTTP requests. It must
// wrap the middleware that commits errors so the recorded status is final.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		prometheus.RecordHTTPRequest(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(c.Response().Status),
			time.Since(start).Seconds(),
		)

		return err
	}
}
