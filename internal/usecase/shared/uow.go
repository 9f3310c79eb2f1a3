package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"hotel-booking/internal/domain/booking"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
	ErrRetriesExhausted  = errs.New("transaction failed after max retries")
)

type UnitOfWork interface {
	// Within runs fn in a ReadCommitted transaction with a bounded lock wait.
	// Serialization failures, deadlocks and lock timeouts are retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	DB() sqlc.DBTX
}

type RoomRepository interface {
	// LockForUpdate takes the row lock that serializes reservations of one room.
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) (*RoomSnapshot, error)
}

type BookingRepository interface {
	WindowsInRange(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, period booking.DateRange) ([]booking.DateRange, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error)
	DeleteByOwner(ctx context.Context, tx sqlc.DBTX, bookingID, userID uuid.UUID) (bool, error)
}
