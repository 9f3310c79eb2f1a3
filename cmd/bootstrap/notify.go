package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.BookingNotifier)),
		),
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics) (*notify.Dispatcher, error) {
	var publisher notify.Publisher = notify.NewLogPublisher()
	if cfg.Kafka.Enabled() {
		kp, err := notify.NewKafkaPublisher(cfg.Kafka, m)
		if err != nil {
			return nil, err
		}
		publisher = kp
		slog.Info("booking notifications go to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	dispatcher := notify.NewDispatcher(publisher, m, notify.DispatcherOptions{
		QueueSize:      cfg.Booking.NotifyQueue,
		Workers:        cfg.Booking.NotifyWorkers,
		PublishTimeout: cfg.Kafka.WriteTimeout,
	})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dispatcher.Close(ctx)
		},
	})
	return dispatcher, nil
}
