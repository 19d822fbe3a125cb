package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRequestLogger writes one record per request. Client mistakes are warnings,
// server failures are errors.
func NewRequestLogger(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			// CORS preflight.
			return c.Request().Method == http.MethodOptions
		},
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			lvl, msg := zapcore.InfoLevel, "success"
			switch {
			case v.Status >= http.StatusInternalServerError:
				lvl, msg = zapcore.ErrorLevel, "server error"
			case v.Status >= http.StatusBadRequest:
				lvl, msg = zapcore.WarnLevel, "client error"
			}

			ce := lg.Check(lvl, msg)
			if ce == nil {
				return nil
			}

			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("content_length", v.ContentLength),
				zap.Int64("response_size", v.ResponseSize),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			ce.Write(fields...)

			return nil
		},
		LogLatency:       true,
		LogRemoteIP:      true,
		LogMethod:        true,
		LogURIPath:       true,
		LogRequestID:     true,
		LogStatus:        true,
		LogError:         true,
		LogContentLength: true,
		LogResponseSize:  true,
	})
}
