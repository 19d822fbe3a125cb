package middlewares

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRequestID keeps the X-Request-ID of the caller or generates a new one.
func NewRequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestID returns the request id set by NewRequestID.
func RequestID(eCtx echo.Context) string {
	return eCtx.Response().Header().Get(echo.HeaderXRequestID)
}
