//go:build integration

package testingh

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/queue-composer/internal/logger"
	"github.com/zestagio/queue-composer/internal/validator"
)

var Config config

type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"required,oneof=debug info warn error"`

	KafkaAddress string `envconfig:"KAFKA_ADDRESS" default:"localhost:9092" validate:"required,hostname_port"`

	SQSEndpoint string `envconfig:"SQS_ENDPOINT" default:"http://localhost:4566" validate:"required,url"`
	SQSQueueURL string `envconfig:"SQS_QUEUE_URL" validate:"required,url"`
	SQSRegion   string `envconfig:"SQS_REGION" default:"us-east-1" validate:"required"`
}

func init() {
	if err := envconfig.Process("TEST", &Config); err != nil {
		panic(fmt.Sprintf("parse testing config: %v", err))
	}

	if err := validator.Validator.Struct(Config); err != nil {
		panic(fmt.Sprintf("validate testing config: %v", err))
	}

	logger.MustInit(logger.NewOptions(Config.LogLevel))
}
