package msgproducer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/zestagio/queue-composer/internal/types"
)

// Message is a journal record of a message accepted by the queue.
type Message struct {
	ID           types.MessageID `json:"id"`
	QueueURL     string          `json:"queueUrl"`
	SQSMessageID string          `json:"sqsMessageId"`
	Body         string          `json:"body"`
	Attributes   []Attribute     `json:"attributes"`
}

type Attribute struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ProduceMessage writes the record keyed by its queue URL.
func (s *Service) ProduceMessage(ctx context.Context, msg Message) error {
	if msg.Attributes == nil {
		msg.Attributes = []Attribute{}
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal record: %v", err)
	}

	if s.sealer != nil {
		if value, err = s.sealer.seal(value); err != nil {
			return fmt.Errorf("seal record: %v", err)
		}
	}

	if err := s.wr.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.QueueURL),
		Value: value,
	}); err != nil {
		return fmt.Errorf("write record of %s: %v", msg.ID, err)
	}

	s.lg.Debug("message journaled", zap.Stringer("message_id", msg.ID), zap.String("queue_url", msg.QueueURL))
	return nil
}

func (s *Service) Close() error {
	return s.wr.Close()
}
