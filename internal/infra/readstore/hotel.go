package readstore

import (
	"context"
	"encoding/json"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelReadStore struct {
	queries HotelLookupQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelLookupQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel by id", err)
	}

	services, err := decodeServices(row.Services)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode hotel services", err, infra.KindDBFailure)
	}

	return &queries.HotelView{
		ID:            row.ID,
		Name:          row.Name,
		Location:      row.Location,
		Services:      services,
		RoomsQuantity: int(row.RoomsQuantity),
		ImageID:       int(row.ImageID),
	}, nil
}

func decodeServices(raw []byte) ([]string, error) {
	services := []string{}
	if len(raw) == 0 {
		return services, nil
	}
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, err
	}
	return nonNil(services), nil
}
