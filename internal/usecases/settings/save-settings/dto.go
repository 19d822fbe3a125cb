package savesettings

import (
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
	"github.com/zestagio/queue-composer/internal/validator"
)

// Request fields may be empty: an incomplete connection is stored as is.
type Request struct {
	Region          string `validate:"max=64"`
	AccessKeyID     string `validate:"max=128"`
	SecretAccessKey string `validate:"max=128"`
	SessionToken    string `validate:"max=4096"`
	QueueURL        string `validate:"max=2048"`
}

func (r Request) Validate() error {
	return validator.Validator.Struct(r)
}

func (r Request) Connection() settingsrepo.Connection {
	return settingsrepo.Connection{
		Region:          r.Region,
		AccessKeyID:     r.AccessKeyID,
		SecretAccessKey: r.SecretAccessKey,
		SessionToken:    r.SessionToken,
		QueueURL:        r.QueueURL,
	}
}

type Response struct {
	Connection settingsrepo.Connection
	Complete   bool
}
