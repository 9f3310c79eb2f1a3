package request

import (
	"hotel-booking/internal/domain/booking"
)

// DateRangeQuery binds ?date_from=YYYY-MM-DD&date_to=YYYY-MM-DD.
type DateRangeQuery struct {
	DateFrom string `form:"date_from" binding:"required"`
	DateTo   string `form:"date_to" binding:"required"`
}

func (q DateRangeQuery) ToDomain() (booking.DateRange, error) {
	return booking.ParseDateRange(q.DateFrom, q.DateTo)
}
