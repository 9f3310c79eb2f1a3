package response

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomsLeftResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	DateFrom  string    `json:"date_from"`
	DateTo    string    `json:"date_to"`
	RoomsLeft int       `json:"rooms_left"`
}

type RoomAvailabilityResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Services    []string  `json:"services"`
	Price       int64     `json:"price"`
	Quantity    int       `json:"quantity"`
	ImageID     int       `json:"image_id"`
	RoomsLeft   int       `json:"rooms_left"`
	TotalCost   int64     `json:"total_cost"`
}

type HotelAvailabilityResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Services      []string  `json:"services"`
	RoomsQuantity int       `json:"rooms_quantity"`
	ImageID       int       `json:"image_id"`
	RoomsLeft     int       `json:"rooms_left"`
}

func NewRoomsLeftResponse(roomID uuid.UUID, period booking.DateRange, left int) *RoomsLeftResponse {
	return &RoomsLeftResponse{
		RoomID:    roomID,
		DateFrom:  period.From().Format(booking.DateLayout),
		DateTo:    period.To().Format(booking.DateLayout),
		RoomsLeft: left,
	}
}

func FromRoomAvailabilityViews(views []*queries.RoomAvailabilityView) ([]*RoomAvailabilityResponse, error) {
	return copyAll[RoomAvailabilityResponse](views)
}

func FromHotelAvailabilityViews(views []*queries.HotelAvailabilityView) ([]*HotelAvailabilityResponse, error) {
	return copyAll[HotelAvailabilityResponse](views)
}
