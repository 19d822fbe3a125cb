package sendmessage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	sqsclient "github.com/zestagio/queue-composer/internal/clients/sqs"
	"github.com/zestagio/queue-composer/internal/draft"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	msgproducer "github.com/zestagio/queue-composer/internal/services/msg-producer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/usecase_mock.gen.go -package=sendmessagemocks

var (
	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvalidMessage          = errors.New("invalid message")
	ErrConnectionNotConfigured = errors.New("connection not configured")
	ErrSendFailed              = errors.New("send failed")
)

type settingsRepository interface {
	Get(ctx context.Context) (settingsrepo.Connection, error)
}

type messageSender interface {
	SendMessage(ctx context.Context, conn settingsrepo.Connection, req draft.SendRequest) (sqsclient.SendResult, error)
}

type journal interface {
	ProduceMessage(ctx context.Context, msg msgproducer.Message) error
}

//go:generate options-gen -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	settingsRepo settingsRepository `option:"mandatory" validate:"required"`
	sender       messageSender      `option:"mandatory" validate:"required"`
	journal      journal
}

type UseCase struct {
	Options
	lg *zap.Logger
}

func New(opts Options) (UseCase, error) {
	return UseCase{Options: opts, lg: zap.L().Named("send-message")}, opts.Validate()
}

// Handle validates the message and sends it to the configured queue.
// On ErrInvalidMessage and ErrSendFailed the response still carries the message with its reasons.
func (u UseCase) Handle(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("validate request: %w: %v", ErrInvalidRequest, err)
	}

	msg := req.Message.WithIDs()
	msg.Body = draft.FormatBody(msg.Body)

	result := draft.Validate(msg)
	msg = msg.WithValidation(result)
	if !result.IsValid() {
		return Response{Message: msg}, fmt.Errorf("%w: %v", ErrInvalidMessage, result.Err())
	}

	conn, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("get connection settings: %v", err)
	}
	if err := conn.Validate(); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrConnectionNotConfigured, err)
	}

	sendReq, err := draft.BuildSendRequest(conn.QueueURL, msg)
	if err != nil {
		return Response{}, fmt.Errorf("build send request: %w", err)
	}

	sent, err := u.sender.SendMessage(ctx, conn, sendReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, fmt.Errorf("send message: %w", ctxErr)
		}
		return Response{Message: msg.WithValidation(draft.Invalid(err))}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	u.writeJournal(ctx, conn.QueueURL, sent.MessageID, sendReq.Body, msg)

	return Response{
		Message:   msg,
		MessageID: sent.MessageID,
		MD5OfBody: sent.MD5OfBody,
	}, nil
}

func (u UseCase) writeJournal(ctx context.Context, queueURL, sqsMsgID, body string, msg draft.Message) {
	if u.journal == nil {
		return
	}

	attrs := make([]msgproducer.Attribute, 0, len(msg.Attributes))
	for _, a := range msg.Attributes {
		attrs = append(attrs, msgproducer.Attribute{Name: a.Name, Type: a.Type.String(), Value: a.Value})
	}

	if err := u.journal.ProduceMessage(ctx, msgproducer.Message{
		ID:           msg.ID,
		QueueURL:     queueURL,
		SQSMessageID: sqsMsgID,
		Body:         body,
		Attributes:   attrs,
	}); err != nil {
		u.lg.Warn("cannot write sent message to journal", zap.Error(err), zap.String("sqs_message_id", sqsMsgID))
	}
}
