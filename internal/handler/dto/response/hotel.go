package response

import (
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Services      []string  `json:"services"`
	RoomsQuantity int       `json:"rooms_quantity"`
	ImageID       int       `json:"image_id"`
}

func FromHotelView(view *queries.HotelView) (*HotelResponse, error) {
	return copyInto[HotelResponse](view)
}
