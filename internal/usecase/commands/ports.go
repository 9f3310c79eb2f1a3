package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"time"

	"hotel-booking/internal/domain/booking"
)

// BookingNotifier receives committed bookings. Implementations must not
// block; delivery is best effort.
type BookingNotifier interface {
	BookingConfirmed(b *booking.Booking)
}

type OutcomeRecorder interface {
	ObserveReservation(outcome Outcome, elapsed time.Duration)
}

type ReservationPolicy struct {
	MaxStayDays int
	Timeout     time.Duration
}
