//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const cacheTTL = 20 * time.Second

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockAvailabilityReadStore
	cache *queriesmock.MockAvailabilityCache
	q     queries.AvailabilityQueries

	period booking.DateRange
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockAvailabilityReadStore(s.ctrl)
	s.cache = queriesmock.NewMockAvailabilityCache(s.ctrl)
	s.q = queries.NewAvailabilityQueries(s.store, s.cache, booking.NewDefaultPricingCalculator(),
		queries.AvailabilityPolicy{MaxStayDays: 30, CacheTTL: cacheTTL})
	s.period = booking.MustDateRange("2024-01-02", "2024-01-07")
}

func (s *AvailabilityQueriesTestSuite) TestRoomsLeft_CacheMiss() {
	roomID := uuid.New()
	key := "availability:room:" + roomID.String() + ":2024-01-02/2024-01-07"

	s.cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil)
	s.store.EXPECT().RoomsLeft(gomock.Any(), roomID, s.period).Return(2, nil)
	s.cache.EXPECT().Set(gomock.Any(), key, 2, cacheTTL).Return(nil)

	left, err := s.q.RoomsLeft(context.Background(), roomID, s.period)

	s.Require().NoError(err)
	s.Equal(2, left)
}

func (s *AvailabilityQueriesTestSuite) TestRoomsLeft_CacheHit() {
	roomID := uuid.New()
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*(dst.(*int)) = 4
			return true, nil
		})

	left, err := s.q.RoomsLeft(context.Background(), roomID, s.period)

	s.Require().NoError(err)
	s.Equal(4, left)
}

func (s *AvailabilityQueriesTestSuite) TestRoomsLeft_CacheFailuresFallThrough() {
	roomID := uuid.New()
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	s.store.EXPECT().RoomsLeft(gomock.Any(), roomID, s.period).Return(1, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	left, err := s.q.RoomsLeft(context.Background(), roomID, s.period)

	s.Require().NoError(err)
	s.Equal(1, left)
}

func (s *AvailabilityQueriesTestSuite) TestRoomsLeft_NotFound() {
	roomID := uuid.New()
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().RoomsLeft(gomock.Any(), roomID, s.period).
		Return(0, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := s.q.RoomsLeft(context.Background(), roomID, s.period)

	s.True(errs.Is(err, queries.ErrRoomNotFound))
}

func (s *AvailabilityQueriesTestSuite) TestStayTooLong() {
	tooLong := booking.MustDateRange("2024-01-01", "2024-02-01")

	_, err := s.q.RoomsLeft(context.Background(), uuid.New(), tooLong)
	s.True(errs.Is(err, queries.ErrStayTooLong))

	_, err = s.q.RoomsInHotel(context.Background(), uuid.New(), tooLong)
	s.True(errs.Is(err, queries.ErrStayTooLong))

	_, err = s.q.HotelsInLocation(context.Background(), "Altai", tooLong)
	s.True(errs.Is(err, queries.ErrStayTooLong))
}

func (s *AvailabilityQueriesTestSuite) TestRoomsInHotel_FillsTotalCost() {
	hb := builder.NewHotelBuilder()
	hotelID := hb.BuildView().ID
	rooms := []*queries.RoomAvailabilityView{
		hb.BuildRoomView(100, 3, 1),
		hb.BuildRoomView(250, 2, 0),
	}

	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().RoomsInHotel(gomock.Any(), hotelID, s.period).Return(rooms, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), cacheTTL).Return(nil)

	actual, err := s.q.RoomsInHotel(context.Background(), hotelID, s.period)

	s.Require().NoError(err)
	s.Require().Len(actual, 2)
	s.Equal(int64(500), actual[0].TotalCost)
	s.Equal(int64(1250), actual[1].TotalCost)
	s.Equal(0, actual[1].RoomsLeft, "full rooms are still listed")
}

func (s *AvailabilityQueriesTestSuite) TestRoomsInHotel_HotelNotFound() {
	hotelID := uuid.New()
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().RoomsInHotel(gomock.Any(), hotelID, s.period).
		Return(nil, infra.WrapRepoErr("hotel not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := s.q.RoomsInHotel(context.Background(), hotelID, s.period)

	s.True(errs.Is(err, queries.ErrHotelNotFound))
}

func (s *AvailabilityQueriesTestSuite) TestHotelsInLocation() {
	hotels := []*queries.HotelAvailabilityView{
		builder.NewHotelBuilder().WithRoomsQuantity(6).BuildAvailabilityView(2),
	}
	s.cache.EXPECT().Get(gomock.Any(), "availability:location:altai:2024-01-02/2024-01-07", gomock.Any()).Return(false, nil)
	s.store.EXPECT().HotelsInLocation(gomock.Any(), "Altai", s.period).Return(hotels, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), hotels, cacheTTL).Return(nil)

	actual, err := s.q.HotelsInLocation(context.Background(), "Altai", s.period)

	s.Require().NoError(err)
	s.Equal(hotels, actual)
}

func (s *AvailabilityQueriesTestSuite) TestStoreUnavailablePassesThrough() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().HotelsInLocation(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("query", context.DeadlineExceeded))

	_, err := s.q.HotelsInLocation(context.Background(), "Altai", s.period)

	s.True(infra.IsKind(err, infra.KindUnavailable))
}

func TestNoopCacheAlwaysMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAvailabilityReadStore(ctrl)
	q := queries.NewAvailabilityQueries(store, nil, booking.NewDefaultPricingCalculator(),
		queries.AvailabilityPolicy{MaxStayDays: 30})

	period := booking.MustDateRange("2024-01-02", "2024-01-03")
	roomID := uuid.New()
	store.EXPECT().RoomsLeft(gomock.Any(), roomID, period).Return(1, nil).Times(2)

	for range 2 {
		left, err := q.RoomsLeft(context.Background(), roomID, period)
		if err != nil || left != 1 {
			t.Fatalf("RoomsLeft() = %d, %v", left, err)
		}
	}
}
