// Package notify delivers workflow notification events to the downstream
// SMS/email sender.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// messageWriter is the subset of *kafka.Writer the dispatcher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// message is the wire format consumed by the notification sender.
type message struct {
	ID            uuid.UUID         `json:"id"`
	Kind          string            `json:"kind"`
	SubmissionID  uuid.UUID         `json:"submission_id"`
	ApplicationID uuid.UUID         `json:"application_id"`
	RecipientRef  string            `json:"recipient_ref"`
	TemplateID    string            `json:"template_id"`
	Variables     map[string]string `json:"variables,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// KafkaDispatcher publishes notification events to a Kafka topic keyed by
// application, so events for one application stay ordered.
type KafkaDispatcher struct {
	writer messageWriter
	topic  string
	log    *slog.Logger
}

// NewKafkaDispatcher creates a dispatcher writing to topic on brokers.
func NewKafkaDispatcher(brokers []string, topic string, logger *slog.Logger) (*KafkaDispatcher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka dispatcher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka dispatcher requires a topic")
	}
	return newKafkaDispatcher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}, topic, logger), nil
}

func newKafkaDispatcher(w messageWriter, topic string, logger *slog.Logger) *KafkaDispatcher {
	return &KafkaDispatcher{
		writer: w,
		topic:  topic,
		log:    logger.With("adapter", "notify.kafka"),
	}
}

// Dispatch publishes one event.
func (d *KafkaDispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) error {
	payload, err := json.Marshal(message{
		ID:            event.ID,
		Kind:          event.Kind.String(),
		SubmissionID:  event.SubmissionID,
		ApplicationID: event.ApplicationID,
		RecipientRef:  event.RecipientRef,
		TemplateID:    event.TemplateID,
		Variables:     event.Variables,
		OccurredAt:    event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("notify: marshal event %s: %w", event.ID, err)
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Topic: d.topic,
		Key:   []byte(event.ApplicationID.String()),
		Value: payload,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("notify: publish %s %s: %w", event.Kind, event.ID, err)
	}

	d.log.DebugContext(ctx, "notification published",
		slog.String("kind", event.Kind.String()),
		slog.String("submission_id", event.SubmissionID.String()),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}
