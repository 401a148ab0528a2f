package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for Echo
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				String("method", method),
				String("path", path),
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", clientIP),
				String("user_id", userIDStr),
				String("request_id", requestID),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				zl.Error("HTTP request", fields...)
			case statusCode >= 400:
				zl.Warn("HTTP request", fields...)
			default:
				zl.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
