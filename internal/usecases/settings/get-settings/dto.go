package getsettings

import (
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
)

type Response struct {
	Connection settingsrepo.Connection
	Complete   bool
}
