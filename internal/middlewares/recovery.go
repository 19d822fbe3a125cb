package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRecovery turns a handler panic into a 500 and reports it with the request coordinates.
func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			lg.Error("panic recovered",
				zap.Error(err),
				zap.String("method", eCtx.Request().Method),
				zap.String("path", eCtx.Path()),
				zap.String("request_id", RequestID(eCtx)),
				zap.ByteString("stack", stack),
			)
			return err
		},
	})
}
