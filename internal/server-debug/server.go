package serverdebug

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/queue-composer/internal/buildinfo"
	"github.com/zestagio/queue-composer/internal/logger"
	"github.com/zestagio/queue-composer/internal/middlewares"
	"github.com/zestagio/queue-composer/internal/server"
)

const readHeaderTimeout = time.Second

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	addr      string      `option:"mandatory" validate:"required,hostname_port"`
	v1Swagger *openapi3.T `option:"mandatory" validate:"required"`
}

type Server struct {
	lg        *zap.Logger
	srv       *http.Server
	v1Swagger *openapi3.T
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	lg := zap.L().Named("server-debug")

	e := echo.New()
	e.Use(
		middlewares.NewRequestLogger(lg),
		middlewares.NewRecovery(lg),
		middlewares.NewRequestID(),
	)

	s := &Server{
		lg: lg,
		srv: &http.Server{
			Addr:              opts.addr,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		v1Swagger: opts.v1Swagger,
	}

	index := newIndexPage()
	for _, r := range []struct {
		method  string
		path    string
		handler echo.HandlerFunc
		title   string
	}{
		{http.MethodGet, "/version", s.Version, "Get build information"},
		{http.MethodGet, "/log/level", echo.WrapHandler(logger.Level), "Get current log level"},
		{http.MethodPut, "/log/level", echo.WrapHandler(logger.Level), ""},
		{http.MethodGet, "/debug/pprof/*", echo.WrapHandler(newPprofMux()), ""},
		{http.MethodGet, "/debug/error", s.DebugError, "Debug Sentry error event"},
		{http.MethodGet, "/schema/composer", s.SchemaComposer, "Get composer OpenAPI specification"},
	} {
		e.Add(r.method, r.path, r.handler)
		if r.title != "" {
			index.addPage(r.path, r.title)
		}
	}
	index.addPage("/debug/pprof/", "Go std profiler")
	index.addPage("/debug/pprof/profile?seconds=30", "Take half-min profile")

	e.GET("/", index.handler)
	return s, nil
}

func newPprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context) error {
	return server.Serve(ctx, s.lg, s.srv)
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, buildinfo.BuildInfo)
}

func (s *Server) DebugError(eCtx echo.Context) error {
	s.lg.Error("debug sentry event", zap.String("request_id", middlewares.RequestID(eCtx)))

	return eCtx.String(http.StatusOK, "event sent")
}

func (s *Server) SchemaComposer(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, s.v1Swagger)
}
