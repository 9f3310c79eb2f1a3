package api

import (
	"net/http"
	"strings"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Rooms left
// @Description Number of units of a room type still free over the inclusive date range
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date_from query string true "First night (YYYY-MM-DD)"
// @Param date_to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.RoomsLeftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *AvailabilityHandler) RoomsLeft(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.DateRangeQuery
	if err = c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	period, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	left, err := h.q.RoomsLeft(c.Request.Context(), roomID, period)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewRoomsLeftResponse(roomID, period, left))
}

// @Summary Rooms of a hotel
// @Description Every room type of the hotel with availability and total cost for the range
// @Tags availability
// @Produce json
// @Param id path string true "Hotel ID"
// @Param date_from query string true "First night (YYYY-MM-DD)"
// @Param date_to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *AvailabilityHandler) HotelRooms(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.DateRangeQuery
	if err = c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	period, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	views, err := h.q.RoomsInHotel(c.Request.Context(), hotelID, period)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	resp, err := resdto.FromRoomAvailabilityViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Hotels in a location
// @Description Hotels whose location contains the given text and that still have rooms for the range
// @Tags availability
// @Produce json
// @Param location path string true "Location substring"
// @Param date_from query string true "First night (YYYY-MM-DD)"
// @Param date_to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} resdto.HotelAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels/location/{location} [get]
func (h *AvailabilityHandler) HotelsInLocation(c *gin.Context) {
	location := strings.TrimSpace(c.Param("location"))
	if location == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyLocation, "Location required", nil)
		return
	}
	var req reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	period, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	views, err := h.q.HotelsInLocation(c.Request.Context(), location, period)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	resp, err := resdto.FromHotelAvailabilityViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
