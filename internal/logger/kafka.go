package logger

import (
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaLogger reports kafka-go activity of the component at debug level.
func KafkaLogger(component string) kafka.Logger {
	return kafka.LoggerFunc(zap.L().Named(component).Sugar().Debugf)
}

// KafkaErrorLogger reports kafka-go failures of the component at error level.
func KafkaErrorLogger(component string) kafka.Logger {
	return kafka.LoggerFunc(zap.L().Named(component).Sugar().Errorf)
}
