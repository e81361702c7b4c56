// Package kafka publishes domain events to the notification and inventory
// collaborators. Publishing is fire-and-forget from the caller's point of
// view: handlers log failures and never roll back an order transition because
// an event could not be sent.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grocery/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// deliveryCompletedEvent is the payload published when an order reaches
// Delivered status.
type deliveryCompletedEvent struct {
	OrderID        string    `json:"orderId"`
	PartnerID      string    `json:"partnerId"`
	ZoneCode       string    `json:"zoneCode"`
	TotalAmount    float64   `json:"totalAmount"`
	PartnerEarning float64   `json:"partnerEarning"`
	DeliveredAt    time.Time `json:"deliveredAt"`
}

// stockRestoreEvent is the payload published when an order is cancelled and
// its reserved stock must return to inventory.
type stockRestoreEvent struct {
	OrderID     string    `json:"orderId"`
	ZoneCode    string    `json:"zoneCode"`
	TotalAmount float64   `json:"totalAmount"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// Producer implements the NotificationClient and InventoryClient ports on top
// of a sarama sync producer.
type Producer struct {
	producer               sarama.SyncProducer
	deliveryCompletedTopic string
	stockRestoreTopic      string
}

// NewProducer connects to the Kafka cluster and returns a producer publishing
// to the given topics. brokers is a comma-separated host list.
func NewProducer(brokers, deliveryCompletedTopic, stockRestoreTopic string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true // required for SyncProducer
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Producer{
		producer:               producer,
		deliveryCompletedTopic: deliveryCompletedTopic,
		stockRestoreTopic:      stockRestoreTopic,
	}, nil
}

// NotifyDeliveryCompleted publishes a delivery completed event keyed by the
// order ID.
func (p *Producer) NotifyDeliveryCompleted(_ context.Context, o *order.Order) error {
	event := deliveryCompletedEvent{
		OrderID:        o.ID().String(),
		ZoneCode:       o.ZoneCode().String(),
		TotalAmount:    o.TotalAmount().Amount(),
		PartnerEarning: o.PartnerEarning().Amount(),
	}
	if partnerID := o.AssignedPartner(); partnerID != nil {
		event.PartnerID = partnerID.String()
	}
	if deliveredAt := o.DeliveredAt(); deliveredAt != nil {
		event.DeliveredAt = *deliveredAt
	}

	return p.publish(p.deliveryCompletedTopic, o.ID().String(), event)
}

// RestockOnCancel publishes a stock restore event keyed by the order ID.
func (p *Producer) RestockOnCancel(_ context.Context, o *order.Order) error {
	event := stockRestoreEvent{
		OrderID:     o.ID().String(),
		ZoneCode:    o.ZoneCode().String(),
		TotalAmount: o.TotalAmount().Amount(),
	}
	if cancelledAt := o.CancelledAt(); cancelledAt != nil {
		event.CancelledAt = *cancelledAt
	}

	return p.publish(p.stockRestoreTopic, o.ID().String(), event)
}

func (p *Producer) publish(topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for topic %s: %w", topic, err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send message to topic %s: %w", topic, err)
	}

	return nil
}

// Close shuts the underlying producer down, flushing pending messages.
func (p *Producer) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
