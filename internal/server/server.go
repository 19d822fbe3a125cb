package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomdlwr "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/zestagio/queue-composer/internal/middlewares"
)

const (
	bodyLimit = "300KB" // 256 KiB of SQS message + JSON overhead.

	readHeaderTimeout = time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger        `option:"mandatory" validate:"required"`
	addr              string             `option:"mandatory" validate:"required,hostname_port"`
	allowOrigins      []string           `option:"mandatory" validate:"min=1"`
	handlersRegistrar func(e *echo.Echo) `option:"mandatory" validate:"required"`
}

type Server struct {
	lg  *zap.Logger
	srv *http.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	e := echo.New()
	e.Use(
		middlewares.NewRequestLogger(opts.logger),
		middlewares.NewRecovery(opts.logger),
		middlewares.NewRequestID(),
		echomdlwr.CORSWithConfig(echomdlwr.CORSConfig{
			AllowOrigins:  opts.allowOrigins,
			AllowMethods:  []string{http.MethodPost},
			ExposeHeaders: []string{echo.HeaderXRequestID},
		}),
		echomdlwr.BodyLimit(bodyLimit),
	)

	opts.handlersRegistrar(e)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           e,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &Server{
		lg:  opts.logger,
		srv: srv,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context) error {
	return Serve(ctx, s.lg, s.srv)
}
