package testconnection

import (
	"context"
	"errors"
	"fmt"

	sqsclient "github.com/zestagio/queue-composer/internal/clients/sqs"
	"github.com/zestagio/queue-composer/internal/draft"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=testconnectionmocks

// Body is the fixed body of the probe message.
const Body = "connection test"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrConnectionFailed = errors.New("connection failed")
)

type messageSender interface {
	SendMessage(ctx context.Context, conn settingsrepo.Connection, req draft.SendRequest) (sqsclient.SendResult, error)
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	sender messageSender `option:"mandatory" validate:"required"`
}

type UseCase struct {
	Options
}

func New(opts Options) (UseCase, error) {
	return UseCase{Options: opts}, opts.Validate()
}

// Handle sends a probe message with no attributes to the queue of the given connection.
func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("validate request: %w: %v", ErrInvalidRequest, err)
	}

	sendReq, err := draft.BuildSendRequest(req.Connection.QueueURL, draft.Message{Body: Body})
	if err != nil {
		return Response{}, fmt.Errorf("build send request: %w", err)
	}

	sent, err := u.sender.SendMessage(ctx, req.Connection, sendReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, fmt.Errorf("send message: %w", ctxErr)
		}
		return Response{Errors: draft.Invalid(err).Reasons()}, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return Response{MessageID: sent.MessageID}, nil
}
