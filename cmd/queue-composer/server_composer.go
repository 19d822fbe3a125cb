package main

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	sqsclient "github.com/zestagio/queue-composer/internal/clients/sqs"
	draftsrepo "github.com/zestagio/queue-composer/internal/repositories/drafts"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	"github.com/zestagio/queue-composer/internal/server"
	servercomposer "github.com/zestagio/queue-composer/internal/server-composer"
	"github.com/zestagio/queue-composer/internal/server-composer/errhandler"
	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
	internalerrhandler "github.com/zestagio/queue-composer/internal/server/errhandler"
	msgproducer "github.com/zestagio/queue-composer/internal/services/msg-producer"
	getattributetypes "github.com/zestagio/queue-composer/internal/usecases/composer/get-attribute-types"
	getdrafts "github.com/zestagio/queue-composer/internal/usecases/composer/get-drafts"
	savedrafts "github.com/zestagio/queue-composer/internal/usecases/composer/save-drafts"
	sendmessage "github.com/zestagio/queue-composer/internal/usecases/composer/send-message"
	validatemessage "github.com/zestagio/queue-composer/internal/usecases/composer/validate-message"
	getsettings "github.com/zestagio/queue-composer/internal/usecases/settings/get-settings"
	savesettings "github.com/zestagio/queue-composer/internal/usecases/settings/save-settings"
	testconnection "github.com/zestagio/queue-composer/internal/usecases/settings/test-connection"
)

const nameServerComposer = "server-composer"

func initServerComposer(
	productionMode bool,
	addr string,
	allowOrigins []string,
	v1Swagger *openapi3.T,

	draftsRepo *draftsrepo.Repo,
	settingsRepo *settingsrepo.Repo,
	sqsFactory *sqsclient.Factory,
	journal *msgproducer.Service,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerComposer)

	getDraftsUseCase, err := getdrafts.New(getdrafts.NewOptions(draftsRepo))
	if err != nil {
		return nil, fmt.Errorf("create get drafts usecase: %v", err)
	}

	saveDraftsUseCase, err := savedrafts.New(savedrafts.NewOptions(draftsRepo))
	if err != nil {
		return nil, fmt.Errorf("create save drafts usecase: %v", err)
	}

	var sendMsgOpts []sendmessage.OptOptionsSetter
	if journal != nil {
		sendMsgOpts = append(sendMsgOpts, sendmessage.WithJournal(journal))
	}
	sendMessageUseCase, err := sendmessage.New(sendmessage.NewOptions(settingsRepo, sqsFactory, sendMsgOpts...))
	if err != nil {
		return nil, fmt.Errorf("create send message usecase: %v", err)
	}

	testConnectionUseCase, err := testconnection.New(testconnection.NewOptions(sqsFactory))
	if err != nil {
		return nil, fmt.Errorf("create test connection usecase: %v", err)
	}

	getSettingsUseCase, err := getsettings.New(getsettings.NewOptions(settingsRepo))
	if err != nil {
		return nil, fmt.Errorf("create get settings usecase: %v", err)
	}

	saveSettingsUseCase, err := savesettings.New(savesettings.NewOptions(settingsRepo))
	if err != nil {
		return nil, fmt.Errorf("create save settings usecase: %v", err)
	}

	v1Handlers, err := composerv1.NewHandlers(composerv1.NewOptions(
		lg,
		getattributetypes.New(),
		getDraftsUseCase,
		saveDraftsUseCase,
		validatemessage.New(),
		sendMessageUseCase,
		testConnectionUseCase,
		getSettingsUseCase,
		saveSettingsUseCase,
	))
	if err != nil {
		return nil, fmt.Errorf("create v1 handlers: %v", err)
	}

	errHandler, err := internalerrhandler.New(internalerrhandler.NewOptions(lg, productionMode, errhandler.ResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		allowOrigins,
		servercomposer.NewHandlersRegistrar(v1Swagger, v1Handlers, errHandler.Handle),
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
