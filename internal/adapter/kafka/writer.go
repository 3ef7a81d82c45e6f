// Package kafka publishes extracted site records to a downstream topic for
// archival and change-detection consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/groundwatertools/well-data-service/internal/config"
	"github.com/groundwatertools/well-data-service/internal/domain"
)

// Writer produces record envelopes to a Kafka topic.
// It implements service.RecordSink.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes a record envelope and writes it to the sink topic.
func (w *Writer) Publish(ctx context.Context, record domain.SinkRecord) error {
	msg, err := serializeToMessage(record)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a SinkRecord into a Kafka message, keyed by
// site so records for one well land on one partition.
func serializeToMessage(record domain.SinkRecord) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize site record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(record.AgencyCode + ":" + record.SiteNumber),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "record_type", Value: []byte(record.RecordType)},
			{Key: "retrieved_at", Value: []byte(record.RetrievedAt.Format(time.RFC3339))},
		},
	}, nil
}
