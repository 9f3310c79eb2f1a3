package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.ListByUser(ctx, userID)
}
