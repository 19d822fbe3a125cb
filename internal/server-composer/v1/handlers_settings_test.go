package composerv1_test

import (
	"fmt"
	"net/http"

	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	getsettings "github.com/zestagio/queue-composer/internal/usecases/settings/get-settings"
	savesettings "github.com/zestagio/queue-composer/internal/usecases/settings/save-settings"
	testconnection "github.com/zestagio/queue-composer/internal/usecases/settings/test-connection"
)

const connectionJSON = `{
    "region": "us-east-1",
    "accessKeyId": "AKIAEXAMPLE",
    "secretAccessKey": "secret",
    "sessionToken": "token",
    "queueUrl": "http://localhost:4566/000000000000/composer"
}`

func connectionFixture() settingsrepo.Connection {
	return settingsrepo.Connection{
		Region:          "us-east-1",
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token",
		QueueURL:        "http://localhost:4566/000000000000/composer",
	}
}

func (s *HandlersSuite) TestGetSettings_Empty() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/getSettings", "")
	s.getSettings.EXPECT().Handle(eCtx.Request().Context()).Return(getsettings.Response{}, nil)

	// Action.
	err := s.handlers.PostGetSettings(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`
{
    "data": {
        "complete": false,
        "connection": {"region": "", "accessKeyId": "", "secretAccessKey": "", "sessionToken": "", "queueUrl": ""}
    }
}`, resp.Body.String())
}

func (s *HandlersSuite) TestSaveSettings_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/saveSettings", `{"connection": `+connectionJSON+`}`)
	s.saveSettings.EXPECT().Handle(eCtx.Request().Context(), savesettings.Request{
		Region:          "us-east-1",
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token",
		QueueURL:        "http://localhost:4566/000000000000/composer",
	}).Return(savesettings.Response{Connection: connectionFixture(), Complete: true}, nil)

	// Action.
	err := s.handlers.PostSaveSettings(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`{"data": {"complete": true, "connection": `+connectionJSON+`}}`, resp.Body.String())
}

func (s *HandlersSuite) TestSaveSettings_Usecase_InvalidRequest() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/saveSettings", `{"connection": {"region": "us-east-1"}}`)
	s.saveSettings.EXPECT().Handle(eCtx.Request().Context(), savesettings.Request{Region: "us-east-1"}).
		Return(savesettings.Response{}, savesettings.ErrInvalidRequest)

	// Action.
	err := s.handlers.PostSaveSettings(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestTestConnection_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/testConnection", `{"connection": `+connectionJSON+`}`)
	s.testConnection.EXPECT().Handle(eCtx.Request().Context(), testconnection.Request{Connection: connectionFixture()}).
		Return(testconnection.Response{MessageID: "a4b1"}, nil)

	// Action.
	err := s.handlers.PostTestConnection(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`{"data": {"sent": true, "messageId": "a4b1"}}`, resp.Body.String())
}

func (s *HandlersSuite) TestTestConnection_Failed() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/testConnection", `{"connection": `+connectionJSON+`}`)
	s.testConnection.EXPECT().Handle(eCtx.Request().Context(), testconnection.Request{Connection: connectionFixture()}).
		Return(
			testconnection.Response{Errors: []string{"InvalidClientTokenId"}},
			fmt.Errorf("%w: InvalidClientTokenId", testconnection.ErrConnectionFailed),
		)

	// Action.
	err := s.handlers.PostTestConnection(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`{"data": {"sent": false, "errors": ["InvalidClientTokenId"]}}`, resp.Body.String())
}

func (s *HandlersSuite) TestTestConnection_Usecase_InvalidRequest() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/testConnection", `{"connection": {"region": "us-east-1"}}`)
	s.testConnection.EXPECT().Handle(eCtx.Request().Context(), testconnection.Request{
		Connection: settingsrepo.Connection{Region: "us-east-1"},
	}).Return(testconnection.Response{}, testconnection.ErrInvalidRequest)

	// Action.
	err := s.handlers.PostTestConnection(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}
