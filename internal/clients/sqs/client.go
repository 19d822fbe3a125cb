package sqsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/zestagio/queue-composer/internal/buildinfo"
	"github.com/zestagio/queue-composer/internal/logger"
)

const serviceName = "sqs-client"

//go:generate options-gen -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	region          string `option:"mandatory" validate:"required"`
	accessKeyID     string `option:"mandatory" validate:"required"`
	secretAccessKey string `option:"mandatory" validate:"required"`
	sessionToken    string
	endpoint        string `validate:"omitempty,url"`
	debugMode       bool
}

// Client is a tiny client to the SQS queue operations the composer needs.
type Client struct {
	api *sqs.Client
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(opts.region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.accessKeyID, opts.secretAccessKey, opts.sessionToken),
		),
		config.WithLogger(logger.SmithyLogger(serviceName)),
		config.WithAppID("queue-composer/"+buildinfo.Version()),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %v", err)
	}

	api := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if opts.endpoint != "" {
			o.BaseEndpoint = aws.String(opts.endpoint)
		}
		if opts.debugMode {
			o.ClientLogMode = aws.LogRequestWithBody | aws.LogResponseWithBody | aws.LogRetries
		}
	})

	return &Client{api: api}, nil
}
