package repository

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	LockRoomForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockRoomForUpdateRow, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.LockRoomForUpdate(ctx, tx, roomID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return &shared.RoomSnapshot{
		ID:       row.ID,
		HotelID:  row.HotelID,
		Price:    row.Price,
		Quantity: int(row.Quantity),
	}, nil
}
