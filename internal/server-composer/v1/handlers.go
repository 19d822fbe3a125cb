package composerv1

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	getattributetypes "github.com/zestagio/queue-composer/internal/usecases/composer/get-attribute-types"
	getdrafts "github.com/zestagio/queue-composer/internal/usecases/composer/get-drafts"
	savedrafts "github.com/zestagio/queue-composer/internal/usecases/composer/save-drafts"
	sendmessage "github.com/zestagio/queue-composer/internal/usecases/composer/send-message"
	validatemessage "github.com/zestagio/queue-composer/internal/usecases/composer/validate-message"
	getsettings "github.com/zestagio/queue-composer/internal/usecases/settings/get-settings"
	savesettings "github.com/zestagio/queue-composer/internal/usecases/settings/save-settings"
	testconnection "github.com/zestagio/queue-composer/internal/usecases/settings/test-connection"
)

var _ ServerInterface = Handlers{}

//go:generate mockgen -source=$GOFILE -destination=mocks/handlers_mocks.gen.go -package=composerv1mocks
type getAttributeTypesUseCase interface {
	Handle(ctx context.Context) (getattributetypes.Response, error)
}

type getDraftsUseCase interface {
	Handle(ctx context.Context) (getdrafts.Response, error)
}

type saveDraftsUseCase interface {
	Handle(ctx context.Context, req savedrafts.Request) (savedrafts.Response, error)
}

type validateMessageUseCase interface {
	Handle(ctx context.Context, req validatemessage.Request) (validatemessage.Response, error)
}

type sendMessageUseCase interface {
	Handle(ctx context.Context, req sendmessage.Request) (sendmessage.Response, error)
}

type testConnectionUseCase interface {
	Handle(ctx context.Context, req testconnection.Request) (testconnection.Response, error)
}

type getSettingsUseCase interface {
	Handle(ctx context.Context) (getsettings.Response, error)
}

type saveSettingsUseCase interface {
	Handle(ctx context.Context, req savesettings.Request) (savesettings.Response, error)
}

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger              `option:"mandatory" validate:"required"`
	getAttributeTypes getAttributeTypesUseCase `option:"mandatory" validate:"required"`
	getDrafts         getDraftsUseCase         `option:"mandatory" validate:"required"`
	saveDrafts        saveDraftsUseCase        `option:"mandatory" validate:"required"`
	validateMessage   validateMessageUseCase   `option:"mandatory" validate:"required"`
	sendMessage       sendMessageUseCase       `option:"mandatory" validate:"required"`
	testConnection    testConnectionUseCase    `option:"mandatory" validate:"required"`
	getSettings       getSettingsUseCase       `option:"mandatory" validate:"required"`
	saveSettings      saveSettingsUseCase      `option:"mandatory" validate:"required"`
}

type Handlers struct {
	Options
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}
	return Handlers{Options: opts}, nil
}
