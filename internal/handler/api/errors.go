package api

import (
	"net/http"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// hint for clients that hit lock contention or a store outage
const retryAfter = time.Second

type errorMapping struct {
	target  error
	status  int
	message string
}

// ordered: the first match wins
var errorMappings = []errorMapping{
	{booking.ErrCostOverflow, http.StatusBadRequest, "Total cost out of range"},
	{commands.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{booking.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{queries.ErrStayTooLong, http.StatusBadRequest, "Date range too long"},
	{booking.ErrStayTooLong, http.StatusBadRequest, "Date range too long"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{queries.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{queries.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrRoomUnavailable, http.StatusConflict, "Room cannot be booked"},
	{commands.ErrTransientConflict, http.StatusServiceUnavailable, "Conflicting reservations, retry later"},
	{commands.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

func abortWithMappedError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			if m.status == http.StatusServiceUnavailable {
				httperr.AbortRetryable(c, err, m.message, retryAfter)
				return
			}
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	if infra.IsKind(err, infra.KindUnavailable) {
		httperr.AbortRetryable(c, err, "Service temporarily unavailable", retryAfter)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
