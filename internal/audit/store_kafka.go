package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaStore publishes audit events to a Kafka topic. Delivery is
// fire-and-forget: audit must never block or fail the mutation it describes,
// so produce errors are logged, not returned.
type KafkaStore struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaStore connects a producer to the given brokers (comma separated).
func NewKafkaStore(brokers, topic string, logger *slog.Logger) (*KafkaStore, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(strings.Split(brokers, ",")...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaStore{client: client, topic: topic, logger: logger}, nil
}

func (s *KafkaStore) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Action),
		Value: payload,
	}
	s.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			s.logger.Error("audit publish failed",
				"action", event.Action,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes pending records and shuts the producer down.
func (s *KafkaStore) Close() {
	s.client.Close()
}
