package notify

import (
	"context"
	"log/slog"
)

// LogPublisher stands in when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, event BookingConfirmed) error {
	slog.InfoContext(ctx, "booking confirmed",
		"booking_id", event.BookingID.String(),
		"room_id", event.RoomID.String(),
		"date_from", event.DateFrom,
		"date_to", event.DateTo,
		"total_cost", event.TotalCost)
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
