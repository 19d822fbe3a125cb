package draft

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SendRequest is a well-formed SQS send-message request.
type SendRequest struct {
	QueueURL   string
	Body       string
	Attributes map[string]sqstypes.MessageAttributeValue
}

// BuildSendRequest maps a validated message to a send request.
// Attribute names are expected to be unique already: a later duplicate overwrites an earlier one.
func BuildSendRequest(queueURL string, msg Message) (SendRequest, error) {
	attrs := make(map[string]sqstypes.MessageAttributeValue, len(msg.Attributes))
	for _, a := range msg.Attributes {
		v, err := a.Type.wireValue(a.Value)
		if err != nil {
			return SendRequest{}, fmt.Errorf("map attribute %q of type %q: %w", a.Name, a.Type, err)
		}
		attrs[a.Name] = v
	}

	return SendRequest{
		QueueURL:   queueURL,
		Body:       FormatBody(msg.Body),
		Attributes: attrs,
	}, nil
}

func (r SendRequest) Input() *sqs.SendMessageInput {
	return &sqs.SendMessageInput{
		QueueUrl:          aws.String(r.QueueURL),
		MessageBody:       aws.String(r.Body),
		MessageAttributes: r.Attributes,
	}
}
