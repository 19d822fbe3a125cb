package sqsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/zestagio/queue-composer/internal/draft"
)

type SendResult struct {
	MessageID string
	MD5OfBody string
}

// SendMessage performs a single SendMessage call. The SDK retry policy applies,
// the composer itself never retries.
func (c *Client) SendMessage(ctx context.Context, req draft.SendRequest) (SendResult, error) {
	out, err := c.api.SendMessage(ctx, req.Input())
	if err != nil {
		return SendResult{}, fmt.Errorf("send message: %w", err)
	}

	return SendResult{
		MessageID: aws.ToString(out.MessageId),
		MD5OfBody: aws.ToString(out.MD5OfMessageBody),
	}, nil
}
