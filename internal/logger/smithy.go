package logger

import (
	"github.com/aws/smithy-go/logging"
	"go.uber.org/zap"
)

// SmithyLogger routes AWS SDK client logs of the component to the global logger.
// SDK warnings stay warnings, request and retry traces become debug records.
func SmithyLogger(component string) logging.Logger {
	s := zap.L().Named(component).Sugar()
	return logging.LoggerFunc(func(c logging.Classification, format string, v ...any) {
		if c == logging.Warn {
			s.Warnf(format, v...)
			return
		}
		s.Debugf(format, v...)
	})
}
