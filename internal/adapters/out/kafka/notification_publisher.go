// Package kafka publishes committed notifications to a Kafka topic so that an
// external delivery channel (push, e-mail, chat) can pick them up.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/ports"

	"github.com/IBM/sarama"
)

// notificationMessage is the wire format of one published notification.
type notificationMessage struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"created_at"`
	Read      bool   `json:"read"`
}

// NotificationPublisher sends notifications keyed by recipient so that each
// recipient's notifications stay ordered within a partition.
type NotificationPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ ports.NotificationPublisher = (*NotificationPublisher)(nil)

// NewNotificationPublisher connects a synchronous producer to brokers.
func NewNotificationPublisher(brokers []string, topic string, logger *slog.Logger) (*NotificationPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewNotificationPublisherWithProducer(producer, topic, logger), nil
}

func NewNotificationPublisherWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
) *NotificationPublisher {
	return &NotificationPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "NotificationPublisher", "topic", topic),
	}
}

func (p *NotificationPublisher) Publish(ctx context.Context, notifications ...*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(notifications))
	for _, n := range notifications {
		value, err := json.Marshal(notificationMessage{
			ID:        n.ID().String(),
			Recipient: n.Recipient().String(),
			Message:   n.Message(),
			Category:  n.Category().String(),
			CreatedAt: n.CreatedAt().Unix(),
			Read:      n.Read(),
		})
		if err != nil {
			return fmt.Errorf("encode notification %s: %w", n.ID(), err)
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(n.Recipient().String()),
			Value: sarama.ByteEncoder(value),
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		return fmt.Errorf("send notifications: %w", err)
	}

	p.logger.DebugContext(ctx, "notifications published", "count", len(messages))
	return nil
}

func (p *NotificationPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops notifications. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...*notification.Notification) error {
	return nil
}
