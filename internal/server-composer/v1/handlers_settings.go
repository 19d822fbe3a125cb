package composerv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	"github.com/zestagio/queue-composer/internal/middlewares"
	savesettings "github.com/zestagio/queue-composer/internal/usecases/settings/save-settings"
	testconnection "github.com/zestagio/queue-composer/internal/usecases/settings/test-connection"
	"github.com/zestagio/queue-composer/pkg/pointer"
)

func (h Handlers) PostGetSettings(eCtx echo.Context) error {
	result, err := h.getSettings.Handle(eCtx.Request().Context())
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	return eCtx.JSON(http.StatusOK, &GetSettingsResponse{
		Data: &Settings{
			Complete:   result.Complete,
			Connection: adaptConnection(result.Connection),
		},
	})
}

func (h Handlers) PostSaveSettings(eCtx echo.Context) error {
	ctx := eCtx.Request().Context()

	var req SaveSettingsRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewBindError(err)
	}

	result, err := h.saveSettings.Handle(ctx, savesettings.Request{
		Region:          req.Connection.Region,
		AccessKeyID:     req.Connection.AccessKeyId,
		SecretAccessKey: req.Connection.SecretAccessKey,
		SessionToken:    req.Connection.SessionToken,
		QueueURL:        req.Connection.QueueUrl,
	})
	if err != nil {
		if errors.Is(err, savesettings.ErrInvalidRequest) {
			return internalerrors.NewInvalidRequestError(err)
		}
		return fmt.Errorf("save settings: %w", err)
	}

	return eCtx.JSON(http.StatusOK, &SaveSettingsResponse{
		Data: &Settings{
			Complete:   result.Complete,
			Connection: adaptConnection(result.Connection),
		},
	})
}

func (h Handlers) PostTestConnection(eCtx echo.Context) error {
	ctx := eCtx.Request().Context()

	var req TestConnectionRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewBindError(err)
	}

	result, err := h.testConnection.Handle(ctx, testconnection.Request{Connection: req.Connection.toSettings()})
	switch {
	case err == nil:
	case errors.Is(err, testconnection.ErrInvalidRequest):
		return internalerrors.NewInvalidRequestError(err)
	case errors.Is(err, testconnection.ErrConnectionFailed):
		h.logger.Info("connection test failed",
			zap.Error(err),
			zap.String("request_id", middlewares.RequestID(eCtx)),
		)
	default:
		return fmt.Errorf("test connection: %w", err)
	}

	return eCtx.JSON(http.StatusOK, &TestConnectionResponse{
		Data: &ConnectionTestResult{
			Errors:    pointer.SliceWithEmptyAsNil(result.Errors),
			MessageId: pointer.PtrWithZeroAsNil(result.MessageID),
			Sent:      result.MessageID != "",
		},
	})
}
