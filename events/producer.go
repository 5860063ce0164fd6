package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes store events to Kafka. The whole package is optional:
// when KAFKA_BROKERS is unset the store runs without a publisher.
type Producer struct {
	writer *kafka.Writer
}

// NewProducerFromEnv builds a producer from KAFKA_BROKERS (comma-separated).
// Returns (nil, nil) when no brokers are configured.
func NewProducerFromEnv() (*Producer, error) {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil, nil
	}
	return NewProducer(strings.Split(brokers, ",")), nil
}

// NewProducer builds a producer for the given broker addresses. Topics are
// created on demand so local single-broker setups work out of the box.
func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			WriteTimeout:           5 * time.Second,
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishEvent marshals the event and writes it to the topic, keyed for
// per-entity ordering.
func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal failed: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("events: write failed: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
