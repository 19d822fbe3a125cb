package seedclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zestagio/queue-composer/internal/buildinfo"
	"github.com/zestagio/queue-composer/internal/draft"
)

const requestTimeout = 10 * time.Second

//go:generate options-gen -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	debugMode  bool
	maxRetries uint64        `default:"3" validate:"lte=10"`
	backoff    time.Duration `default:"500ms" validate:"gte=0"`
}

// Client loads seed drafts from a local file or over HTTP.
type Client struct {
	lg         *zap.Logger
	cli        *resty.Client
	maxRetries uint64
	backoff    time.Duration
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	cli := resty.New()
	cli.SetDebug(opts.debugMode)
	cli.SetTimeout(requestTimeout)
	cli.SetHeader("User-Agent", "queue-composer/"+buildinfo.Version())
	cli.SetHeader("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	return &Client{
		lg:         zap.L().Named("seed-client"),
		cli:        cli,
		maxRetries: opts.maxRetries,
		backoff:    opts.backoff,
	}, nil
}

// Load returns the raw records found at source. An empty source means no seed data.
func (c *Client) Load(ctx context.Context, source string) ([]draft.RawMessage, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if isRemote(source) {
		data, err = c.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read seed %q: %w", source, err)
	}

	return c.decode(data)
}

func (c *Client) decode(data []byte) ([]draft.RawMessage, error) {
	if looksLikeJSON(data) {
		// YAML misses some JSON escapes (e.g. "\/"), so JSON is parsed by its own
		// decoder and re-emitted as YAML to share the shape-tolerant decoding below.
		doc, err := jsonToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSeed, err)
		}
		data = doc
	}

	var records []draft.RawMessage
	err := yaml.Unmarshal(data, &records)
	if err != nil {
		var errType *yaml.TypeError
		if !errors.As(err, &errType) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSeed, err)
		}
		// Records are of unvalidated shape: keep what could be decoded.
		c.lg.Warn("seed records partially decoded", zap.Strings("problems", errType.Errors))
	}

	return records, nil
}

func looksLikeJSON(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && (data[0] == '[' || data[0] == '{')
}

func jsonToYAML(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON document")
	}
	return yaml.Marshal(doc)
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
