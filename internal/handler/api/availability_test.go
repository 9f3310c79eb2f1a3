//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/rooms/:id/availability", s.handler.RoomsLeft)
	s.router.GET("/hotels/location/:location", s.handler.HotelsInLocation)
	s.router.GET("/hotels/:id/rooms", s.handler.HotelRooms)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

const rangeQuery = "?date_from=2024-01-02&date_to=2024-01-07"

// ================================================================================
// TestRoomsLeft
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestRoomsLeft() {
	roomID := uuid.New()
	path := "/rooms/" + roomID.String() + "/availability"
	period := booking.MustDateRange("2024-01-02", "2024-01-07")

	s.Run("success: echoes the range with rooms_left", func() {
		s.mockQueries.EXPECT().RoomsLeft(gomock.Any(), roomID, period).Return(2, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+rangeQuery, nil, "")

		var body resdto.RoomsLeftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(roomID, body.RoomID)
		s.Equal("2024-01-02", body.DateFrom)
		s.Equal("2024-01-07", body.DateTo)
		s.Equal(2, body.RoomsLeft)
	})

	s.Run("success: negative counts pass through unclamped", func() {
		s.mockQueries.EXPECT().RoomsLeft(gomock.Any(), roomID, period).Return(-1, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+rangeQuery, nil, "")

		var body resdto.RoomsLeftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(-1, body.RoomsLeft)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name string
			path string
			msg  string
		}{
			{"missing date_to", path + "?date_from=2024-01-02", "Invalid request"},
			{"missing both dates", path, "Invalid request"},
			{"not ISO date", path + "?date_from=01/02/2024&date_to=2024-01-07", "Invalid date range"},
			{"reversed range", path + "?date_from=2024-01-07&date_to=2024-01-02", "Invalid date range"},
			{"bad room id", "/rooms/abc/availability" + rangeQuery, "Invalid id"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: maps query failures to statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown room", queries.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
			{"stay too long", errs.Mark(errs.New("31 nights"), queries.ErrStayTooLong), http.StatusBadRequest, "Date range too long"},
			{"store down", infra.WrapRepoErr("query failed", errs.New("dial tcp"), infra.KindUnavailable), http.StatusServiceUnavailable, "temporarily unavailable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().RoomsLeft(gomock.Any(), roomID, period).Return(0, tc.queryErr)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+rangeQuery, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestHotelRooms
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestHotelRooms() {
	hb := builder.NewHotelBuilder()
	hotel := hb.BuildView()
	path := "/hotels/" + hotel.ID.String() + "/rooms"

	s.Run("success: rooms carry rooms_left and total_cost", func() {
		room := hb.BuildRoomView(100, 3, 1)
		room.TotalCost = 500
		s.mockQueries.EXPECT().RoomsInHotel(gomock.Any(), hotel.ID, gomock.Any()).
			Return([]*queries.RoomAvailabilityView{room}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+rangeQuery, nil, "")

		var body []resdto.RoomAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(room.ID, body[0].ID)
		s.Equal(hotel.ID, body[0].HotelID)
		s.Equal(1, body[0].RoomsLeft)
		s.Equal(int64(500), body[0].TotalCost)
		s.Equal([]string{"wifi"}, body[0].Services)
	})

	s.Run("success: hotel without rooms is an empty array", func() {
		s.mockQueries.EXPECT().RoomsInHotel(gomock.Any(), hotel.ID, gomock.Any()).
			Return([]*queries.RoomAvailabilityView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+rangeQuery, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 404 for an unknown hotel", func() {
		s.mockQueries.EXPECT().RoomsInHotel(gomock.Any(), hotel.ID, gomock.Any()).
			Return(nil, queries.ErrHotelNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+rangeQuery, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}

// ================================================================================
// TestHotelsInLocation
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestHotelsInLocation() {
	hb := builder.NewHotelBuilder().WithRoomsQuantity(6)

	s.Run("success: location path segment is unescaped", func() {
		view := hb.BuildAvailabilityView(2)
		s.mockQueries.EXPECT().HotelsInLocation(gomock.Any(), "Gorno Altaysk", gomock.Any()).
			Return([]*queries.HotelAvailabilityView{view}, nil)

		path := "/hotels/location/" + url.PathEscape("Gorno Altaysk") + rangeQuery
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		var body []resdto.HotelAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal(6, body[0].RoomsQuantity)
		s.Equal(2, body[0].RoomsLeft)
	})

	s.Run("error: blank location is rejected before querying", func() {
		path := "/hotels/location/" + url.PathEscape("  ") + rangeQuery
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Location required")
	})

	s.Run("error: reversed range", func() {
		path := "/hotels/location/Altai?date_from=2024-01-07&date_to=2024-01-02"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}
