package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/symptom-advisor/internal/config"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces consultation events to a Kafka topic.
// It implements advisor.Publisher.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured consultation topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaConsultationTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		// Each chat turn writes synchronously; don't hold it for a batch.
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes one consultation event.
func (w *Writer) Publish(ctx context.Context, c domain.Consultation) error {
	msg, err := serializeToMessage(c)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write consultation %s: %w", c.ID, err)
	}
	w.logger.Debug("consultation published", "consultation_id", c.ID, "intent", c.Intent)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Consultation into a Kafka message keyed by its ID.
func serializeToMessage(c domain.Consultation) (kafkago.Message, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize consultation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(c.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "intent", Value: []byte(c.Intent)},
			{Key: "occurred_at", Value: []byte(c.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
