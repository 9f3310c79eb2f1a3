package shared

import (
	"github.com/google/uuid"
)

// Write-side view of a room, independent of the read models.
type RoomSnapshot struct {
	ID       uuid.UUID
	HotelID  uuid.UUID
	Price    int64
	Quantity int
}
