package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange    = errors.New("date_to is earlier than date_from")
	ErrStayTooLong     = errors.New("stay exceeds the maximum number of nights")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrRoomUnavailable = errors.New("no rooms left for the requested dates")
	ErrInvalidQuantity = errors.New("room quantity must be positive")
	ErrCostOverflow    = errors.New("total cost exceeds the representable amount")
)

type Services struct {
	Clock             clock.Clock
	PricingCalculator PricingCalculator
}

// RoomSpec is the slice of room state a reservation depends on.
type RoomSpec struct {
	ID       uuid.UUID
	Price    int64
	Quantity int
}

type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	period    DateRange
	price     Money
	totalDays int
	totalCost Money
	createdAt time.Time
}

// NewBooking admits a reservation only if the room still has capacity once
// the already-booked windows are counted against the requested period.
func NewBooking(
	services *Services,
	room RoomSpec,
	userID uuid.UUID,
	period DateRange,
	booked []DateRange,
) (*Booking, error) {
	if room.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	price, err := NewMoney(room.Price)
	if err != nil {
		return nil, err
	}

	totalCost, err := services.PricingCalculator.TotalCost(period, price)
	if err != nil {
		return nil, err
	}

	if RoomsLeft(room.Quantity, CountOverlaps(booked, period)) <= 0 {
		return nil, ErrRoomUnavailable
	}

	return &Booking{
		id:        uuid.New(),
		roomID:    room.ID,
		userID:    userID,
		period:    period,
		price:     price,
		totalDays: services.PricingCalculator.TotalDays(period),
		totalCost: totalCost,
		createdAt: services.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, roomID, userID uuid.UUID,
	period DateRange,
	price int64,
	totalDays int,
	totalCost int64,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		period:    period,
		price:     Money{amount: price},
		totalDays: totalDays,
		totalCost: Money{amount: totalCost},
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID {
	return b.id
}

func (b *Booking) RoomID() uuid.UUID {
	return b.roomID
}

func (b *Booking) UserID() uuid.UUID {
	return b.userID
}

func (b *Booking) Period() DateRange {
	return b.period
}

func (b *Booking) Price() Money {
	return b.price
}

func (b *Booking) TotalDays() int {
	return b.totalDays
}

func (b *Booking) TotalCost() Money {
	return b.totalCost
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}
