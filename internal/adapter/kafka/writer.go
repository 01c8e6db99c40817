package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gpswatch/notamview/internal/config"
	"github.com/gpswatch/notamview/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces accepted NOTAMs to a Kafka topic.
// It implements pipeline.FeedPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured feed topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishBatch serializes and publishes the accepted NOTAMs for one day in a
// single WriteMessages call.
func (w *Writer) PublishBatch(ctx context.Context, day string, notams []domain.Notam) error {
	if len(notams) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(notams))
	for i := range notams {
		msg, err := serializeToMessage(day, notams[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Notam into a Kafka message keyed by ident.
func serializeToMessage(day string, n domain.Notam) (kafkago.Message, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize notam: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(n.Ident),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "day", Value: []byte(day)},
			{Key: "published_at", Value: []byte(domain.Now().UTC().Format(time.RFC3339))},
		},
	}, nil
}
