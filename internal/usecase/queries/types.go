package queries

import (
	"time"

	"github.com/google/uuid"
)

type RoomAvailabilityView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Services    []string  `json:"services"`
	Price       int64     `json:"price"`
	Quantity    int       `json:"quantity"`
	ImageID     int       `json:"image_id"`
	RoomsLeft   int       `json:"rooms_left"`
	// filled by the query layer from Price and the requested range
	TotalCost int64 `json:"total_cost"`
}

type HotelAvailabilityView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Services      []string  `json:"services"`
	RoomsQuantity int       `json:"rooms_quantity"`
	ImageID       int       `json:"image_id"`
	RoomsLeft     int       `json:"rooms_left"`
}

type HotelView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Services      []string  `json:"services"`
	RoomsQuantity int       `json:"rooms_quantity"`
	ImageID       int       `json:"image_id"`
}

// BookingListItem is a booking joined with the room it reserves.
type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	UserID      uuid.UUID `json:"user_id"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	Price       int64     `json:"price"`
	TotalCost   int64     `json:"total_cost"`
	TotalDays   int       `json:"total_days"`
	ImageID     int       `json:"image_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Services    []string  `json:"services"`
}
