package composerv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	validatemessage "github.com/zestagio/queue-composer/internal/usecases/composer/validate-message"
)

func (h Handlers) PostValidateMessage(eCtx echo.Context) error {
	ctx := eCtx.Request().Context()

	var req ValidateMessageRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewBindError(err)
	}

	result, err := h.validateMessage.Handle(ctx, validatemessage.Request{Message: req.Message.toDraft()})
	if err != nil {
		if errors.Is(err, validatemessage.ErrInvalidRequest) {
			return internalerrors.NewInvalidRequestError(err)
		}
		return fmt.Errorf("validate message: %w", err)
	}

	msg := adaptMessage(result.Message)
	return eCtx.JSON(http.StatusOK, &ValidateMessageResponse{Data: &msg})
}
