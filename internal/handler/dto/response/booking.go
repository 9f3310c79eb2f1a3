package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	DateFrom  string    `json:"date_from"`
	DateTo    string    `json:"date_to"`
	Price     int64     `json:"price"`
	TotalDays int       `json:"total_days"`
	TotalCost int64     `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	UserID      uuid.UUID `json:"user_id"`
	DateFrom    string    `json:"date_from"`
	DateTo      string    `json:"date_to"`
	Price       int64     `json:"price"`
	TotalCost   int64     `json:"total_cost"`
	TotalDays   int       `json:"total_days"`
	ImageID     int       `json:"image_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Services    []string  `json:"services"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		UserID:    b.UserID(),
		DateFrom:  b.Period().From().Format(booking.DateLayout),
		DateTo:    b.Period().To().Format(booking.DateLayout),
		Price:     b.Price().Amount(),
		TotalDays: b.TotalDays(),
		TotalCost: b.TotalCost().Amount(),
		CreatedAt: b.CreatedAt(),
	}
}

func FromBookingListItems(items []*queries.BookingListItem) ([]*BookingListResponse, error) {
	return copyAll[BookingListResponse](items)
}
