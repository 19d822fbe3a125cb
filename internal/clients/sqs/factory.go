package sqsclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/zestagio/queue-composer/internal/draft"
	settingsrepo "github.com/zestagio/queue-composer/internal/repositories/settings"
)

//go:generate options-gen -out-filename=factory_options.gen.go -from-struct=FactoryOptions
type FactoryOptions struct {
	endpoint  string `option:"mandatory" validate:"omitempty,url"`
	debugMode bool   `option:"mandatory"`
}

// Factory sends messages on behalf of a connection that may change at runtime.
// The client of the last used connection is reused.
type Factory struct {
	endpoint  string
	debugMode bool

	mu       sync.Mutex
	lastConn settingsrepo.Connection
	last     *Client
}

func NewFactory(opts FactoryOptions) (*Factory, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Factory{
		endpoint:  opts.endpoint,
		debugMode: opts.debugMode,
	}, nil
}

func (f *Factory) SendMessage(
	ctx context.Context,
	conn settingsrepo.Connection,
	req draft.SendRequest,
) (SendResult, error) {
	cli, err := f.client(conn)
	if err != nil {
		return SendResult{}, err
	}
	return cli.SendMessage(ctx, req)
}

func (f *Factory) client(conn settingsrepo.Connection) (*Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.last != nil && f.lastConn == conn {
		return f.last, nil
	}

	cli, err := New(NewOptions(
		conn.Region,
		conn.AccessKeyID,
		conn.SecretAccessKey,
		WithSessionToken(conn.SessionToken),
		WithEndpoint(f.endpoint),
		WithDebugMode(f.debugMode),
	))
	if err != nil {
		return nil, fmt.Errorf("create sqs client: %v", err)
	}

	f.last, f.lastConn = cli, conn
	return cli, nil
}
