package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AccessLog middleware writes one structured log line per request
func AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			event := log.Info()
			if c.Response().Status >= 500 {
				event = log.Error()
			}

			event.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start))

			if requestID, ok := c.Get("request_id").(string); ok {
				event = event.Str("request_id", requestID)
			}

			event.Msg("request")
			return nil
		}
	}
}
