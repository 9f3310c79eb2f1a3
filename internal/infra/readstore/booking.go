package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsByUserRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	result := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		services, err := decodeServices(row.Services)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode room services", err, infra.KindDBFailure)
		}
		result = append(result, &queries.BookingListItem{
			ID:          row.ID,
			RoomID:      row.RoomID,
			UserID:      row.UserID,
			DateFrom:    pgconv.DateFromPgtype(row.DateFrom),
			DateTo:      pgconv.DateFromPgtype(row.DateTo),
			Price:       row.Price,
			TotalCost:   row.TotalCost.Int64,
			TotalDays:   int(row.TotalDays.Int32),
			ImageID:     int(row.ImageID),
			Name:        row.Name,
			Description: row.Description,
			Services:    services,
		})
	}
	return result, nil
}
