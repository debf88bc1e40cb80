package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// CheckEvent is one check verdict published on the result stream for
// downstream consumers (dashboards, metric sinks). Delivery is best effort,
// the monitor's correctness never depends on it.
type CheckEvent struct {
	CycleID       string    `json:"cycle_id"`
	ServerID      string    `json:"server_id"`
	ServerName    string    `json:"server_name"`
	Online        bool      `json:"online"`
	PlayersOnline int       `json:"players_online"`
	PlayersMax    int       `json:"players_max"`
	LatencyMs     *int64    `json:"latency_ms"`
	Method        string    `json:"method"`
	Attempts      int       `json:"attempts"`
	Timestamp     time.Time `json:"timestamp"`
}

type Publisher interface {
	PublishCheckEvent(ctx context.Context, event CheckEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func (p *kafkaPublisher) PublishCheckEvent(ctx context.Context, event CheckEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("Publisher.PublishCheckEvent: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ServerID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("Publisher.PublishCheckEvent: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func NewKafkaPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}
