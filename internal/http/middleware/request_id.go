package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, honoring one supplied by the
// caller so IDs stay stable across the frontend proxy. The ID is echoed in
// the response header and stored in the context for the access log and
// trace span.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			c.Response().Header().Set(requestIDHeader, id)
			c.Set("request_id", id)

			return next(c)
		}
	}
}
