package settingsrepo

import (
	"github.com/zestagio/queue-composer/internal/validator"
)

// Connection holds the credentials and endpoint used to reach the queue.
// Values are opaque: a connection is usable when every field is set.
type Connection struct {
	Region          string `validate:"required"`
	AccessKeyID     string `validate:"required"`
	SecretAccessKey string `validate:"required"`
	SessionToken    string `validate:"required"`
	QueueURL        string `validate:"required"`
}

func (c Connection) Validate() error {
	return validator.Validator.Struct(c)
}

func (c Connection) IsComplete() bool {
	return c.Validate() == nil
}

func (c Connection) IsZero() bool {
	return c == Connection{}
}
