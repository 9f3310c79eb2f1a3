package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error)
	ListRoomBookingsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsInRangeParams) ([]sqlc.ListRoomBookingsInRangeRow, error)
	DeleteBookingByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBookingByOwnerParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// WindowsInRange narrows the room's bookings to those that can intersect
// period; the caller still counts them with booking.CountOverlaps.
func (r *BookingRepository) WindowsInRange(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, period booking.DateRange) ([]booking.DateRange, error) {
	rows, err := r.queries.ListRoomBookingsInRange(ctx, tx, sqlc.ListRoomBookingsInRangeParams{
		RoomID:   roomID,
		DateTo:   pgconv.DateToPgtype(period.To()),
		DateFrom: pgconv.DateToPgtype(period.From()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}

	windows := make([]booking.DateRange, 0, len(rows))
	for _, row := range rows {
		w, err := converter.DateRangeFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking window", err, infra.KindDBFailure)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return converter.BookingFromCreateRow(b, row), nil
}

func (r *BookingRepository) DeleteByOwner(ctx context.Context, tx sqlc.DBTX, bookingID, userID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteBookingByOwner(ctx, tx, sqlc.DeleteBookingByOwnerParams{ID: bookingID, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}
