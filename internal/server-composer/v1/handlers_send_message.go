package composerv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	"github.com/zestagio/queue-composer/internal/middlewares"
	sendmessage "github.com/zestagio/queue-composer/internal/usecases/composer/send-message"
	"github.com/zestagio/queue-composer/pkg/pointer"
)

func (h Handlers) PostSendMessage(eCtx echo.Context) error {
	ctx := eCtx.Request().Context()

	var req SendMessageRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewBindError(err)
	}

	result, err := h.sendMessage.Handle(ctx, sendmessage.Request{Message: req.Message.toDraft()})
	switch {
	case err == nil:
	case errors.Is(err, sendmessage.ErrInvalidRequest):
		return internalerrors.NewInvalidRequestError(err)
	case errors.Is(err, sendmessage.ErrConnectionNotConfigured):
		return internalerrors.NewServerError(ErrorCodeConnectionNotConfigured, "connection not configured", err)
	case errors.Is(err, sendmessage.ErrInvalidMessage), errors.Is(err, sendmessage.ErrSendFailed):
		// Reported to the browser as the message errors.
		h.logger.Info("message not sent",
			zap.Error(err),
			zap.String("request_id", middlewares.RequestID(eCtx)),
		)
	default:
		return fmt.Errorf("send message: %w", err)
	}

	return eCtx.JSON(http.StatusOK, &SendMessageResponse{
		Data: &SendResult{
			Errors:    pointer.SliceWithEmptyAsNil(result.Message.Errors()),
			Md5OfBody: pointer.PtrWithZeroAsNil(result.MD5OfBody),
			Message:   adaptMessage(result.Message),
			MessageId: pointer.PtrWithZeroAsNil(result.MessageID),
			Sent:      result.Sent(),
		},
	})
}
