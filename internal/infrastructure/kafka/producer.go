package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// HeaderEventType carries the event type so consumers can filter without decoding.
const HeaderEventType = "event-type"

// typedEvent is implemented by events that name their own type.
type typedEvent interface {
	Type() string
}

// Producer publishes JSON events to a single topic.
type Producer struct {
	writer *kafka.Writer
	now    func() time.Time
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, now: time.Now}
}

// Publish writes event keyed by key. Messages with the same key land on the
// same partition, so views of one product stay ordered.
func (p *Producer) Publish(ctx context.Context, key string, event any) error {
	msg, err := p.message(key, event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.writer.Topic, err)
	}
	return nil
}

func (p *Producer) message(key string, event any) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  p.now(),
	}
	if te, ok := event.(typedEvent); ok {
		msg.Headers = []kafka.Header{{Key: HeaderEventType, Value: []byte(te.Type())}}
	}
	return msg, nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
