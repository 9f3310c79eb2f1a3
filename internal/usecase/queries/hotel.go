package queries

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/queries/hotel.go -package=queriesmock

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
}

type hotelQueriesImpl struct {
	store HotelReadStore
}

func NewHotelQueries(store HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{store: store}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, err
	}
	return view, nil
}
