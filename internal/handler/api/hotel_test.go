//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHotelHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockHotelQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockHotelQueries(ctrl)
		router := gin.New()
		router.GET("/hotels/:id", api.NewHotelHandler(q).Get)
		return router, q
	}

	t.Run("success", func(t *testing.T) {
		router, q := setup(t)
		view := builder.NewHotelBuilder().BuildView()
		q.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/hotels/"+view.ID.String(), nil, "")

		var body resdto.HotelResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, view.ID, body.ID)
		require.Equal(t, view.Name, body.Name)
		require.Equal(t, view.Location, body.Location)
		require.Equal(t, view.RoomsQuantity, body.RoomsQuantity)
		require.Equal(t, view.Services, body.Services)
	})

	t.Run("not found", func(t *testing.T) {
		router, q := setup(t)
		view := builder.NewHotelBuilder().BuildView()
		q.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrHotelNotFound)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/hotels/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Hotel not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := setup(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/hotels/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid id")
	})
}
