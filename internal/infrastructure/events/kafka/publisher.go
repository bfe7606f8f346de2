// Package kafka forwards catalog events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// Publisher sends forwarded events to one topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a new Kafka event publisher
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	config.Version = sarama.V2_1_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("creating producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish sends data keyed by subject, so events of one kind stay ordered
// within a partition.
func (p *Publisher) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(subject),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("message_id"), Value: []byte(msgID)},
			{Key: []byte("subject"), Value: []byte(subject)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}

// Name identifies the broker in metrics.
func (p *Publisher) Name() string {
	return "kafka"
}

// Close closes the publisher
func (p *Publisher) Close() error {
	return p.producer.Close()
}
