package msgproducer

import (
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/zestagio/queue-composer/internal/logger"
)

const writeTimeout = 5 * time.Second

// NewKafkaWriter builds a synchronous writer: messages with the same key land in the same partition.
func NewKafkaWriter(brokers []string, topic string, batchSize int) *kafka.Writer {
	if batchSize <= 0 {
		batchSize = 1
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    batchSize,
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: writeTimeout,
		Logger:       logger.KafkaLogger(serviceName),
		ErrorLogger:  logger.KafkaErrorLogger(serviceName),
	}
}
