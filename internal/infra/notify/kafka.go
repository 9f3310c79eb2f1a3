package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

// KafkaPublisher hands events to an async writer: Publish returns once the
// message is buffered and delivery failures surface through Completion.
type KafkaPublisher struct {
	writer   *kafka.Writer
	observer DropObserver
}

func NewKafkaPublisher(cfg config.KafkaConfig, observer DropObserver) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("at least one kafka broker is required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka topic cannot be empty")
	}

	p := &KafkaPublisher{observer: observer}
	p.writer = &kafka.Writer{
		Addr:  kafka.TCP(cfg.Brokers...),
		Topic: cfg.Topic,
		Async: true,
		// keyed by room so events for one room stay ordered
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		Compression:  compression(cfg.Compression),
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Completion:   p.completed,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer: "+msg, "args", args)
		}),
	}
	return p, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event BookingConfirmed) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	msg := kafka.Message{
		Key:   []byte(event.RoomID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to publish %s", event.BookingID)
	}
	return nil
}

// completed runs on the writer's goroutine once a batch is acknowledged or
// has failed every attempt.
func (p *KafkaPublisher) completed(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range messages {
		if p.observer != nil {
			p.observer.NotificationDropped()
		}
		slog.Error("booking notification not delivered",
			"room_id", string(m.Key),
			"error", err.Error())
	}
}

// Close flushes buffered messages before returning.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	case "none":
		return compress.None
	default:
		return compress.Snappy
	}
}

func requiredAcks(n int) kafka.RequiredAcks {
	switch n {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}
