//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var FixedNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	room     booking.RoomSpec
	userID   uuid.UUID
	dateFrom string
	dateTo   string
	booked   []booking.DateRange
	clock    clock.Clock
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		room: booking.RoomSpec{
			ID:       uuid.New(),
			Price:    100,
			Quantity: 1,
		},
		userID:   uuid.New(),
		dateFrom: "2024-01-02",
		dateTo:   "2024-01-07",
		clock:    clock.Fixed(FixedNow),
	}
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.room.ID = id
	return b
}

func (b *BookingBuilder) WithPrice(price int64) *BookingBuilder {
	b.room.Price = price
	return b
}

func (b *BookingBuilder) WithQuantity(q int) *BookingBuilder {
	b.room.Quantity = q
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.userID = id
	return b
}

func (b *BookingBuilder) WithDates(from, to string) *BookingBuilder {
	b.dateFrom = from
	b.dateTo = to
	return b
}

// WithBooked adds existing windows given as from/to pairs.
func (b *BookingBuilder) WithBooked(pairs ...[2]string) *BookingBuilder {
	for _, p := range pairs {
		b.booked = append(b.booked, booking.MustDateRange(p[0], p[1]))
	}
	return b
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:             b.clock,
		PricingCalculator: booking.NewDefaultPricingCalculator(),
	}
}

func (b *BookingBuilder) Period() booking.DateRange {
	return booking.MustDateRange(b.dateFrom, b.dateTo)
}

func (b *BookingBuilder) RoomSpec() booking.RoomSpec {
	return b.room
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Services(), b.room, b.userID, b.Period(), b.booked)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:   b.room.ID,
		DateFrom: b.dateFrom,
		DateTo:   b.dateTo,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	period := b.Period()
	return &queries.BookingListItem{
		ID:          uuid.New(),
		RoomID:      b.room.ID,
		UserID:      b.userID,
		DateFrom:    period.From(),
		DateTo:      period.To(),
		Price:       b.room.Price,
		TotalDays:   period.Nights(),
		TotalCost:   b.room.Price * int64(period.Nights()),
		ImageID:     1,
		Name:        "Standard double",
		Description: "Two beds, city view",
		Services:    []string{"wifi", "tv"},
	}
}
