package request

import (
	"fmt"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	DateFrom string    `json:"date_from" binding:"required"`
	DateTo   string    `json:"date_to" binding:"required"`
}

// ToCommand only parses the dates; ordering and stay length are checked by
// the reservation itself.
func (r CreateBookingRequest) ToCommand() (commands.ReserveRequest, error) {
	from, err := time.Parse(booking.DateLayout, r.DateFrom)
	if err != nil {
		return commands.ReserveRequest{}, fmt.Errorf("date_from: %w", err)
	}
	to, err := time.Parse(booking.DateLayout, r.DateTo)
	if err != nil {
		return commands.ReserveRequest{}, fmt.Errorf("date_to: %w", err)
	}
	return commands.ReserveRequest{
		RoomID:   r.RoomID,
		DateFrom: from,
		DateTo:   to,
	}, nil
}
