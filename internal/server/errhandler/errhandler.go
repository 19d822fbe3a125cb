package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	"github.com/zestagio/queue-composer/internal/middlewares"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger          *zap.Logger                                    `option:"mandatory" validate:"required"`
	productionMode  bool                                           `option:"mandatory"`
	responseBuilder func(code int, msg string, details string) any `option:"mandatory" validate:"required"`
}

type Handler struct {
	lg              *zap.Logger
	productionMode  bool
	responseBuilder func(code int, msg string, details string) any
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:              opts.logger,
		productionMode:  opts.productionMode,
		responseBuilder: opts.responseBuilder,
	}, nil
}

func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		h.lg.Warn("response already committed", zap.Error(err))
		return
	}

	code, msg, details := h.processError(err)
	if internalerrors.IsInternal(code) {
		h.lg.Error("unhandled error",
			zap.Error(err),
			zap.String("path", eCtx.Path()),
			zap.String("request_id", middlewares.RequestID(eCtx)),
		)
	}

	// The envelope carries the code, the status is always 200.
	if err := eCtx.JSON(http.StatusOK, h.responseBuilder(code, msg, details)); err != nil {
		h.lg.Error("write error response", zap.Error(err))
	}
}

func (h Handler) processError(err error) (code int, msg string, details string) {
	code, msg, details = internalerrors.ProcessServerError(err)

	if h.productionMode {
		details = ""
	}

	return code, msg, details
}
