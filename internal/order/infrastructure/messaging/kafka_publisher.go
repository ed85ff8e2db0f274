// Package messaging implements the order event publisher ports.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/wyfcoding/groceryplatform/internal/order/domain"
)

// KafkaEventPublisher writes order events to a single topic keyed by
// customer so per-customer ordering is preserved across partitions.
type KafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(brokers []string, topic string) *KafkaEventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		WriteBackoffMin:        100 * time.Millisecond,
		WriteBackoffMax:        time.Second,
	}
	return &KafkaEventPublisher{writer: writer}
}

func (p *KafkaEventPublisher) PublishItemAdded(ctx context.Context, event domain.ItemAddedEvent) error {
	return p.publish(ctx, "ItemAddedEvent", event.CustomerID, event)
}

func (p *KafkaEventPublisher) PublishItemRemoved(ctx context.Context, event domain.ItemRemovedEvent) error {
	return p.publish(ctx, "ItemRemovedEvent", event.CustomerID, event)
}

func (p *KafkaEventPublisher) PublishOrderCheckedOut(ctx context.Context, event domain.OrderCheckedOutEvent) error {
	return p.publish(ctx, "OrderCheckedOutEvent", event.CustomerID, event)
}

func (p *KafkaEventPublisher) publish(ctx context.Context, eventType, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaEventPublisher) Close() error { return p.writer.Close() }
