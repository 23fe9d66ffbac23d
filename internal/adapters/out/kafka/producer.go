// Package kafka publishes domain events to the message broker for
// downstream consumers such as analytics and the vendor dashboard.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"varto/internal/core/ports"
)

// OrderStatusChangedTopic carries one message per committed order status
// change, keyed by order id so per-order ordering is preserved.
const OrderStatusChangedTopic = "order.status-changed"

// orderStatusChangedMessage is the wire format on OrderStatusChangedTopic.
type orderStatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	VendorID   string    `json:"vendor_id"`
	CourierID  *string   `json:"courier_id,omitempty"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer implements ports.EventPublisher on top of a sarama sync producer.
type Producer struct {
	producer sarama.SyncProducer
}

// NewProducer connects to the broker list and returns a producer that waits
// for full acknowledgement on every publish.
func NewProducer(brokers []string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// NewProducerWithClient wraps an existing sarama producer. Used in tests with
// the sarama mocks.
func NewProducerWithClient(producer sarama.SyncProducer) *Producer {
	return &Producer{producer: producer}
}

// PublishOrderStatusChanged sends one status-change event, keyed by order id.
func (p *Producer) PublishOrderStatusChanged(_ context.Context, event ports.OrderStatusChangedEvent) error {
	var courierID *string
	if event.CourierID != nil {
		raw := event.CourierID.String()
		courierID = &raw
	}

	data, err := json.Marshal(orderStatusChangedMessage{
		OrderID:    event.OrderID.String(),
		VendorID:   event.VendorID.String(),
		CourierID:  courierID,
		FromStatus: event.FromStatus,
		ToStatus:   event.ToStatus,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal status-change event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: OrderStatusChangedTopic,
		Key:   sarama.StringEncoder(event.OrderID.String()),
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish to %s: %w", OrderStatusChangedTopic, err)
	}

	return nil
}

// Close shuts down the underlying producer, flushing buffered messages.
func (p *Producer) Close() error {
	return p.producer.Close()
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// NewNopPublisher creates a publisher that accepts and drops everything.
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// PublishOrderStatusChanged drops the event.
func (p *NopPublisher) PublishOrderStatusChanged(_ context.Context, _ ports.OrderStatusChangedEvent) error {
	return nil
}
