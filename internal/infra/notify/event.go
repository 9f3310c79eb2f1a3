package notify

import (
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const EventBookingConfirmed = "booking.confirmed"

// BookingConfirmed is the payload published after a reservation commits.
type BookingConfirmed struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	RoomID     uuid.UUID `json:"room_id"`
	UserID     uuid.UUID `json:"user_id"`
	DateFrom   string    `json:"date_from"`
	DateTo     string    `json:"date_to"`
	Price      int64     `json:"price"`
	TotalDays  int       `json:"total_days"`
	TotalCost  int64     `json:"total_cost"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingConfirmed(b *booking.Booking) BookingConfirmed {
	return BookingConfirmed{
		Type:       EventBookingConfirmed,
		BookingID:  b.ID(),
		RoomID:     b.RoomID(),
		UserID:     b.UserID(),
		DateFrom:   b.Period().From().Format(booking.DateLayout),
		DateTo:     b.Period().To().Format(booking.DateLayout),
		Price:      b.Price().Amount(),
		TotalDays:  b.TotalDays(),
		TotalCost:  b.TotalCost().Amount(),
		OccurredAt: b.CreatedAt(),
	}
}
