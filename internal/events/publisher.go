package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"fittrack-be/internal/entities"
)

// EntryRecorded is emitted after a fitness entry is persisted
type EntryRecorded struct {
	EventID    string    `json:"eventId"`
	Email      string    `json:"email"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
	Date       string    `json:"date"`
	RecordedAt time.Time `json:"recordedAt"`
}

// NewEntryRecorded builds the event for a stored entry
func NewEntryRecorded(entry *entities.FitnessEntry) EntryRecorded {
	recordedAt := entry.CreatedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	return EntryRecorded{
		EventID:    uuid.NewString(),
		Email:      entry.Email,
		Type:       entry.Type,
		Value:      entry.Value,
		Date:       entry.Date,
		RecordedAt: recordedAt,
	}
}

// Publisher announces recorded entries to downstream consumers
type Publisher interface {
	PublishEntryRecorded(ctx context.Context, entry *entities.FitnessEntry) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer the publisher needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON events keyed by email, so one user's entries stay ordered on a partition.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

// NewKafkaPublisherWithWriter wraps an existing writer
func NewKafkaPublisherWithWriter(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishEntryRecorded implements Publisher
func (p *KafkaPublisher) PublishEntryRecorded(ctx context.Context, entry *entities.FitnessEntry) error {
	event := NewEntryRecorded(entry)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal entry event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(entry.Email),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("fitness_entry.recorded")},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish entry event: %w", err)
	}
	return nil
}

// Close flushes and releases the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) PublishEntryRecorded(ctx context.Context, entry *entities.FitnessEntry) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
