package converter

import (
	"hotel-booking/internal/domain/booking"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		UserID:    b.UserID(),
		DateFrom:  pgconv.DateToPgtype(b.Period().From()),
		DateTo:    pgconv.DateToPgtype(b.Period().To()),
		Price:     b.Price().Amount(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

// BookingFromCreateRow rebuilds the entity with the totals computed by the
// generated columns, which are authoritative once stored.
func BookingFromCreateRow(b *booking.Booking, row sqlc.CreateBookingRow) *booking.Booking {
	totalDays := b.TotalDays()
	if row.TotalDays.Valid {
		totalDays = int(row.TotalDays.Int32)
	}
	totalCost := b.TotalCost().Amount()
	if row.TotalCost.Valid {
		totalCost = row.TotalCost.Int64
	}
	return booking.ReconstructBooking(
		row.ID,
		b.RoomID(),
		b.UserID(),
		b.Period(),
		b.Price().Amount(),
		totalDays,
		totalCost,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func DateRangeFromRow(row sqlc.ListRoomBookingsInRangeRow) (booking.DateRange, error) {
	return booking.NewDateRange(pgconv.DateFromPgtype(row.DateFrom), pgconv.DateFromPgtype(row.DateTo))
}
