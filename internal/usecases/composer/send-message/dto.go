package sendmessage

import (
	"github.com/zestagio/queue-composer/internal/draft"
)

type Request struct {
	Message draft.Message
}

func (r Request) Validate() error {
	if r.Message.ID.IsZero() {
		return nil
	}
	return r.Message.ID.Validate()
}

type Response struct {
	// Message is the formatted message. On a validation or send failure its
	// Validation holds the reasons.
	Message draft.Message

	MessageID string
	MD5OfBody string
}

func (r Response) Sent() bool {
	return r.MessageID != ""
}
