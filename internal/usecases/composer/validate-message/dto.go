package validatemessage

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
	// Message carries the formatted body and the validation result.
	Message draft.Message
}
