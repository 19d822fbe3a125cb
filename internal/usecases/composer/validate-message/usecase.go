package validatemessage

import (
	"context"
	"errors"
	"fmt"

	"github.com/zestagio/queue-composer/internal/draft"
)

var ErrInvalidRequest = errors.New("invalid request")

type UseCase struct{}

func New() UseCase {
	return UseCase{}
}

// Handle formats the body and validates the message. Validation problems are
// part of the response, not an error.
func (u UseCase) Handle(_ context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, fmt.Errorf("validate request: %w: %v", ErrInvalidRequest, err)
	}

	msg := req.Message.WithIDs()
	msg.Body = draft.FormatBody(msg.Body)

	return Response{
		Message: msg.WithValidation(draft.Validate(msg)),
	}, nil
}
