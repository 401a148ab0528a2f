package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/metrics"
)

// MetricsMiddleware records per-route request counters
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			metrics.RequestsTotal.WithLabelValues(
				c.Path(),
				c.Request().Method,
				strconv.Itoa(c.Response().Status),
			).Inc()

			return err
		}
	}
}
