package logger

import (
	"fmt"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"

	"github.com/zestagio/queue-composer/internal/buildinfo"
)

const sentryComponent = "queue-composer"

func newSentryCore(dsn, env string) (zapcore.Core, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          buildinfo.Version(),
		Environment:      env,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create sentry client: %v", err)
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.WarnLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags:              map[string]string{"component": sentryComponent},
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, fmt.Errorf("create sentry core: %v", err)
	}
	return core, nil
}
