package storage

import (
	"context"
	"encoding/json"

	"restopos/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish writes msg keyed by msg.Key so every event about one sale, table
// or device lands on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, msg domain.EventMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Key),
		Value: payload,
	})
}
