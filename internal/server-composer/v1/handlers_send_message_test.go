package composerv1_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zestagio/queue-composer/internal/draft"
	internalerrors "github.com/zestagio/queue-composer/internal/errors"
	composerv1 "github.com/zestagio/queue-composer/internal/server-composer/v1"
	sendmessage "github.com/zestagio/queue-composer/internal/usecases/composer/send-message"
	validatemessage "github.com/zestagio/queue-composer/internal/usecases/composer/validate-message"
)

const sendMessageBody = `
{
    "message": {
        "id": "12",
        "body": "hello",
        "attributes": [{"id": "3", "name": "n", "type": "Number", "value": "1"}]
    }
}`

func sendMessageFixture() draft.Message {
	return draft.Message{
		ID:   "12",
		Body: "hello",
		Attributes: []draft.Attribute{
			{ID: "3", Name: "n", Type: draft.AttributeTypeNumber, Value: "1"},
		},
	}
}

func (s *HandlersSuite) TestValidateMessage_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/validateMessage", `{"message": {"id": "12", "body": " ", "attributes": []}}`)
	msg := draft.Message{ID: "12", Body: " ", Attributes: []draft.Attribute{}}
	formatted := draft.Message{ID: "12", Attributes: []draft.Attribute{}}

	s.validateMessage.EXPECT().Handle(eCtx.Request().Context(), validatemessage.Request{Message: msg}).
		Return(validatemessage.Response{Message: formatted.WithValidation(draft.Validate(formatted))}, nil)

	// Action.
	err := s.handlers.PostValidateMessage(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`
{
    "data": {
        "id": "12",
        "body": "",
        "attributes": [],
        "validation": {"valid": false, "errors": ["Body is not defined."]}
    }
}`, resp.Body.String())
}

func (s *HandlersSuite) TestValidateMessage_Usecase_InvalidRequest() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/validateMessage", `{"message": {"id": "x", "body": "a", "attributes": []}}`)
	s.validateMessage.EXPECT().Handle(eCtx.Request().Context(), validatemessage.Request{
		Message: draft.Message{ID: "x", Body: "a", Attributes: []draft.Attribute{}},
	}).Return(validatemessage.Response{}, validatemessage.ErrInvalidRequest)

	// Action.
	err := s.handlers.PostValidateMessage(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_BindRequestError() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/sendMessage", `{"message": "Hel`)

	// Action.
	err := s.handlers.PostSendMessage(eCtx)

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_ConnectionNotConfigured() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/sendMessage", sendMessageBody)
	s.sendMessage.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{Message: sendMessageFixture()}).
		Return(sendmessage.Response{}, fmt.Errorf("%w: queue url is empty", sendmessage.ErrConnectionNotConfigured))

	// Action.
	err := s.handlers.PostSendMessage(eCtx)

	// Assert.
	s.Require().Error(err)
	s.EqualValues(composerv1.ErrorCodeConnectionNotConfigured, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_UnknownError() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/sendMessage", sendMessageBody)
	s.sendMessage.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{Message: sendMessageFixture()}).
		Return(sendmessage.Response{}, context.Canceled)

	// Action.
	err := s.handlers.PostSendMessage(eCtx)

	// Assert.
	s.Require().Error(err)
	s.ErrorIs(err, context.Canceled)
	s.Equal(http.StatusInternalServerError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_InvalidMessage() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/sendMessage", `{"message": {"id": "12", "body": "", "attributes": []}}`)
	msg := draft.Message{ID: "12", Attributes: []draft.Attribute{}}
	result := draft.Validate(msg)

	s.sendMessage.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{Message: msg}).
		Return(sendmessage.Response{Message: msg.WithValidation(result)},
			fmt.Errorf("%w: %v", sendmessage.ErrInvalidMessage, result.Err()))

	// Action.
	err := s.handlers.PostSendMessage(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(`
{
    "data": {
        "sent": false,
        "errors": ["Body is not defined."],
        "message": {
            "id": "12",
            "body": "",
            "attributes": [],
            "validation": {"valid": false, "errors": ["Body is not defined."]}
        }
    }
}`, resp.Body.String())
}

func (s *HandlersSuite) TestSendMessage_Usecase_SendFailed() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/sendMessage", sendMessageBody)
	sendErr := errors.New("api error QueueDoesNotExist")

	s.sendMessage.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{Message: sendMessageFixture()}).
		Return(sendmessage.Response{Message: sendMessageFixture().WithValidation(draft.Invalid(sendErr))},
			fmt.Errorf("%w: %v", sendmessage.ErrSendFailed, sendErr))

	// Action.
	err := s.handlers.PostSendMessage(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`
{
    "data": {
        "sent": false,
        "errors": ["api error QueueDoesNotExist"],
        "message": {
            "id": "12",
            "body": "hello",
            "attributes": [{"id": "3", "name": "n", "type": "Number", "value": "1"}],
            "validation": {"valid": false, "errors": ["api error QueueDoesNotExist"]}
        }
    }
}`, resp.Body.String())
}

func (s *HandlersSuite) TestSendMessage_Usecase_Success() {
	// Arrange.
	resp, eCtx := s.newEchoCtx("/v1/sendMessage", sendMessageBody)
	msg := sendMessageFixture().WithValidation(draft.Validate(sendMessageFixture()))

	s.sendMessage.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{Message: sendMessageFixture()}).
		Return(sendmessage.Response{
			Message:   msg,
			MessageID: "5fea7756-0ea4-451a-a703-a558b933e274",
			MD5OfBody: "5d41402abc4b2a76b9719d911017c592",
		}, nil)

	// Action.
	err := s.handlers.PostSendMessage(eCtx)

	// Assert.
	s.Require().NoError(err)
	s.JSONEq(`
{
    "data": {
        "sent": true,
        "messageId": "5fea7756-0ea4-451a-a703-a558b933e274",
        "md5OfBody": "5d41402abc4b2a76b9719d911017c592",
        "message": {
            "id": "12",
            "body": "hello",
            "attributes": [{"id": "3", "name": "n", "type": "Number", "value": "1"}],
            "validation": {"valid": true, "errors": []}
        }
    }
}`, resp.Body.String())
}
