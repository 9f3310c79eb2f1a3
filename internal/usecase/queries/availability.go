package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStayTooLong   = errs.New("date range too long")
	ErrRoomNotFound  = errs.New("room not found")
	ErrHotelNotFound = errs.New("hotel not found")
)

type AvailabilityQueries interface {
	RoomsLeft(ctx context.Context, roomID uuid.UUID, period booking.DateRange) (int, error)
	RoomsInHotel(ctx context.Context, hotelID uuid.UUID, period booking.DateRange) ([]*RoomAvailabilityView, error)
	HotelsInLocation(ctx context.Context, location string, period booking.DateRange) ([]*HotelAvailabilityView, error)
}

type AvailabilityReadStore interface {
	RoomsLeft(ctx context.Context, roomID uuid.UUID, period booking.DateRange) (int, error)
	RoomsInHotel(ctx context.Context, hotelID uuid.UUID, period booking.DateRange) ([]*RoomAvailabilityView, error)
	HotelsInLocation(ctx context.Context, location string, period booking.DateRange) ([]*HotelAvailabilityView, error)
}

type AvailabilityPolicy struct {
	MaxStayDays int
	CacheTTL    time.Duration
}

type availabilityQueriesImpl struct {
	store  AvailabilityReadStore
	cache  AvailabilityCache
	calc   booking.PricingCalculator
	policy AvailabilityPolicy
}

func NewAvailabilityQueries(
	store AvailabilityReadStore,
	cache AvailabilityCache,
	calc booking.PricingCalculator,
	policy AvailabilityPolicy,
) AvailabilityQueries {
	if cache == nil {
		cache = NewNoopCache()
	}
	return &availabilityQueriesImpl{
		store:  store,
		cache:  cache,
		calc:   calc,
		policy: policy,
	}
}

func (q *availabilityQueriesImpl) RoomsLeft(ctx context.Context, roomID uuid.UUID, period booking.DateRange) (int, error) {
	if err := q.validate(period); err != nil {
		return 0, err
	}

	key := cacheKey("room", roomID.String(), period)
	var cached int
	if q.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	left, err := q.store.RoomsLeft(ctx, roomID, period)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, ErrRoomNotFound)
		}
		return 0, err
	}
	q.cacheSet(ctx, key, left)
	return left, nil
}

func (q *availabilityQueriesImpl) RoomsInHotel(ctx context.Context, hotelID uuid.UUID, period booking.DateRange) ([]*RoomAvailabilityView, error) {
	if err := q.validate(period); err != nil {
		return nil, err
	}

	key := cacheKey("hotel", hotelID.String(), period)
	var cached []*RoomAvailabilityView
	if q.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	rooms, err := q.store.RoomsInHotel(ctx, hotelID, period)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, err
	}

	for _, r := range rooms {
		price, perr := booking.NewMoney(r.Price)
		if perr != nil {
			return nil, errs.Wrapf(perr, "room %s", r.ID)
		}
		total, cerr := q.calc.TotalCost(period, price)
		if cerr != nil {
			return nil, errs.Wrapf(cerr, "room %s", r.ID)
		}
		r.TotalCost = total.Amount()
	}
	q.cacheSet(ctx, key, rooms)
	return rooms, nil
}

func (q *availabilityQueriesImpl) HotelsInLocation(ctx context.Context, location string, period booking.DateRange) ([]*HotelAvailabilityView, error) {
	if err := q.validate(period); err != nil {
		return nil, err
	}

	key := cacheKey("location", strings.ToLower(location), period)
	var cached []*HotelAvailabilityView
	if q.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	hotels, err := q.store.HotelsInLocation(ctx, location, period)
	if err != nil {
		return nil, err
	}
	q.cacheSet(ctx, key, hotels)
	return hotels, nil
}

func (q *availabilityQueriesImpl) validate(period booking.DateRange) error {
	if err := period.ValidateMaxStay(q.policy.MaxStayDays); err != nil {
		return errs.Mark(err, ErrStayTooLong)
	}
	return nil
}

// cache failures only cost a store round trip
func (q *availabilityQueriesImpl) cacheGet(ctx context.Context, key string, dst any) bool {
	hit, err := q.cache.Get(ctx, key, dst)
	if err != nil {
		slog.Warn("availability cache read failed", "key", key, "error", err.Error())
		return false
	}
	return hit
}

func (q *availabilityQueriesImpl) cacheSet(ctx context.Context, key string, value any) {
	if err := q.cache.Set(ctx, key, value, q.policy.CacheTTL); err != nil {
		slog.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}

func cacheKey(kind, id string, period booking.DateRange) string {
	return "availability:" + kind + ":" + id + ":" + period.String()
}
