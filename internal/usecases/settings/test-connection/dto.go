package testconnection

import (
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	"github.com/zestagio/queue-composer/internal/validator"
)

// Request requires a complete connection.
type Request struct {
	Connection settingsrepo.Connection
}

func (r Request) Validate() error {
	return validator.Validator.Struct(r)
}

type Response struct {
	MessageID string
	// Errors holds the send failure reason.
	Errors []string
}
