package seedclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

var (
	ErrMalformedSeed      = errors.New("malformed seed")
	ErrUnexpectedResponse = errors.New("unexpected seed response")
)

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.backoff

	op := func() error {
		resp, err := c.cli.R().
			SetContext(ctx).
			Get(url)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("get: %v", err)
		}

		switch code := resp.StatusCode(); {
		case code == http.StatusOK:
			body = resp.Body()
			return nil
		case code >= http.StatusInternalServerError || code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrUnexpectedResponse, resp.Status())
		default:
			return backoff.Permanent(fmt.Errorf("%w: %v", ErrUnexpectedResponse, resp.Status()))
		}
	}

	notify := func(err error, next time.Duration) {
		c.lg.Warn("fetch seed, retrying", zap.Error(err), zap.Duration("after", next))
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx), notify)
	if err != nil {
		return nil, err
	}
	return body, nil
}
