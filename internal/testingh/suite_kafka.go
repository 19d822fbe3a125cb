//go:build integration

package testingh

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/zestagio/queue-composer/internal/logger"
)

const (
	kafkaClientTimeout  = 10 * time.Second
	journalPartitions   = 8
	journalReaderMaxAge = 3 * time.Second
)

// KafkaSuite creates throwaway journal topics and drops them after the suite.
type KafkaSuite struct {
	ContextSuite
	topics []string
}

func (s *KafkaSuite) TearDownSuite() {
	if len(s.topics) > 0 {
		resp, err := s.client().DeleteTopics(s.SuiteCtx, &kafka.DeleteTopicsRequest{Topics: s.topics})
		s.NoError(err)
		if err == nil {
			for t, err := range resp.Errors {
				s.NoErrorf(err, "delete topic %q", t)
			}
		}
	}
	s.ContextSuite.TearDownSuite()
}

func (s *KafkaSuite) KafkaBrokers() []string {
	return []string{Config.KafkaAddress}
}

// NewTopic creates a topic named after the prefix and the current time.
func (s *KafkaSuite) NewTopic(prefix string) string {
	s.T().Helper()

	topic := fmt.Sprintf("%s.%d", prefix, time.Now().UnixNano())
	resp, err := s.client().CreateTopics(s.SuiteCtx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{
			Topic:             topic,
			NumPartitions:     journalPartitions,
			ReplicationFactor: 1,
		}},
	})
	s.Require().NoError(err)
	s.Require().NoError(resp.Errors[topic], "topic %q", topic)

	s.topics = append(s.topics, topic)
	return topic
}

// ReadN reads n messages from the beginning of the topic.
func (s *KafkaSuite) ReadN(topic string, n int) []kafka.Message {
	s.T().Helper()

	const component = "testingh.KafkaSuite"
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     s.KafkaBrokers(),
		GroupID:     topic + ".reader",
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		Logger:      logger.KafkaLogger(component),
		ErrorLogger: logger.KafkaErrorLogger(component),
	})
	defer func() { s.NoError(r.Close()) }()

	result := make([]kafka.Message, 0, n)
	for i := 0; i < n; i++ {
		m, err := readWithTimeout(s.Ctx, r, journalReaderMaxAge)
		s.Require().NoError(err, "message #%d", i)
		result = append(result, m)
	}
	return result
}

func (s *KafkaSuite) client() *kafka.Client {
	return &kafka.Client{
		Addr:    kafka.TCP(s.KafkaBrokers()...),
		Timeout: kafkaClientTimeout,
	}
}

func readWithTimeout(ctx context.Context, r *kafka.Reader, d time.Duration) (kafka.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return r.ReadMessage(ctx)
}
