//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	view queries.HotelView
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		view: queries.HotelView{
			ID:            uuid.New(),
			Name:          "Seaside Inn",
			Location:      "Altai, Gorno-Altaysk",
			Services:      []string{"wifi", "parking"},
			RoomsQuantity: 10,
			ImageID:       1,
		},
	}
}

func (b *HotelBuilder) WithID(id uuid.UUID) *HotelBuilder {
	b.view.ID = id
	return b
}

func (b *HotelBuilder) WithRoomsQuantity(n int) *HotelBuilder {
	b.view.RoomsQuantity = n
	return b
}

func (b *HotelBuilder) BuildView() *queries.HotelView {
	v := b.view
	return &v
}

func (b *HotelBuilder) BuildAvailabilityView(roomsLeft int) *queries.HotelAvailabilityView {
	return &queries.HotelAvailabilityView{
		ID:            b.view.ID,
		Name:          b.view.Name,
		Location:      b.view.Location,
		Services:      b.view.Services,
		RoomsQuantity: b.view.RoomsQuantity,
		ImageID:       b.view.ImageID,
		RoomsLeft:     roomsLeft,
	}
}

func (b *HotelBuilder) BuildRoomView(price int64, quantity, roomsLeft int) *queries.RoomAvailabilityView {
	return &queries.RoomAvailabilityView{
		ID:          uuid.New(),
		HotelID:     b.view.ID,
		Name:        "Standard",
		Description: "Queen bed",
		Services:    []string{"wifi"},
		Price:       price,
		Quantity:    quantity,
		ImageID:     2,
		RoomsLeft:   roomsLeft,
	}
}
