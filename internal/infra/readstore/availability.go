package readstore

import (
	"context"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// grouping is the column overlap counts are summed by.
type grouping string

const (
	byRoom  grouping = "b.room_id"
	byHotel grouping = "r.hotel_id"
)

// scope narrows the bookings counted before grouping.
type scope string

const (
	scopeRoom     scope = "r.id = @scope_id"
	scopeHotel    scope = "r.hotel_id = @scope_id"
	scopeLocation scope = "r.hotel_id IN (SELECT id FROM hotels WHERE location ILIKE @location_pattern)"
)

// overlapCountsCTE renders the one aggregation all availability reads share:
// per grouping key, the number of bookings whose inclusive window meets
// [@date_from, @date_to]. Units without bookings are absent and must be
// LEFT JOINed with COALESCE(booked, 0).
func overlapCountsCTE(g grouping, s scope) string {
	return `WITH overlaps AS (
	SELECT ` + string(g) + ` AS unit_id, COUNT(*) AS booked
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	WHERE b.date_from <= @date_to
	  AND b.date_to >= @date_from
	  AND ` + string(s) + `
	GROUP BY ` + string(g) + `
)
`
}

const roomColumns = `r.id, r.hotel_id, r.name, r.description, r.services, r.price, r.quantity, r.image_id,
	r.quantity - COALESCE(o.booked, 0) AS rooms_left`

var (
	roomsLeftSQL = overlapCountsCTE(byRoom, scopeRoom) + `SELECT ` + roomColumns + `
FROM rooms r
LEFT JOIN overlaps o ON o.unit_id = r.id
WHERE r.id = @scope_id`

	roomsInHotelSQL = overlapCountsCTE(byRoom, scopeHotel) + `SELECT ` + roomColumns + `
FROM rooms r
LEFT JOIN overlaps o ON o.unit_id = r.id
WHERE r.hotel_id = @scope_id
ORDER BY r.price, r.id`

	hotelsInLocationSQL = overlapCountsCTE(byHotel, scopeLocation) + `SELECT h.id, h.name, h.location, h.services, h.rooms_quantity, h.image_id,
	h.rooms_quantity - COALESCE(o.booked, 0) AS rooms_left
FROM hotels h
LEFT JOIN overlaps o ON o.unit_id = h.id
WHERE h.location ILIKE @location_pattern
  AND h.rooms_quantity - COALESCE(o.booked, 0) > 0
ORDER BY h.name, h.id`
)

type roomAvailabilityRow struct {
	ID          uuid.UUID `db:"id"`
	HotelID     uuid.UUID `db:"hotel_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Services    []string  `db:"services"`
	Price       int64     `db:"price"`
	Quantity    int32     `db:"quantity"`
	ImageID     int32     `db:"image_id"`
	RoomsLeft   int64     `db:"rooms_left"`
}

type hotelAvailabilityRow struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Location      string    `db:"location"`
	Services      []string  `db:"services"`
	RoomsQuantity int32     `db:"rooms_quantity"`
	ImageID       int32     `db:"image_id"`
	RoomsLeft     int64     `db:"rooms_left"`
}

type HotelLookupQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
}

// AvailabilityReadStore issues the aggregation directly through pgx because
// the grouping key and scope vary per query shape.
type AvailabilityReadStore struct {
	queries HotelLookupQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries HotelLookupQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *AvailabilityReadStore) RoomsLeft(ctx context.Context, roomID uuid.UUID, period booking.DateRange) (int, error) {
	rows, err := s.db.Query(ctx, roomsLeftSQL, rangeArgs(period, pgx.NamedArgs{"scope_id": roomID}))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to query room availability", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[roomAvailabilityRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to scan room availability", err)
	}
	return int(row.RoomsLeft), nil
}

func (s *AvailabilityReadStore) RoomsInHotel(ctx context.Context, hotelID uuid.UUID, period booking.DateRange) ([]*queries.RoomAvailabilityView, error) {
	if _, err := s.queries.GetHotelByID(ctx, s.db, hotelID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel", err)
	}

	rows, err := s.db.Query(ctx, roomsInHotelSQL, rangeArgs(period, pgx.NamedArgs{"scope_id": hotelID}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotel rooms availability", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[roomAvailabilityRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotel rooms availability", err)
	}

	result := make([]*queries.RoomAvailabilityView, len(collected))
	for i, row := range collected {
		result[i] = &queries.RoomAvailabilityView{
			ID:          row.ID,
			HotelID:     row.HotelID,
			Name:        row.Name,
			Description: row.Description,
			Services:    nonNil(row.Services),
			Price:       row.Price,
			Quantity:    int(row.Quantity),
			ImageID:     int(row.ImageID),
			RoomsLeft:   int(row.RoomsLeft),
		}
	}
	return result, nil
}

func (s *AvailabilityReadStore) HotelsInLocation(ctx context.Context, location string, period booking.DateRange) ([]*queries.HotelAvailabilityView, error) {
	args := rangeArgs(period, pgx.NamedArgs{"location_pattern": containsPattern(location)})
	rows, err := s.db.Query(ctx, hotelsInLocationSQL, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotels availability", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[hotelAvailabilityRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotels availability", err)
	}

	result := make([]*queries.HotelAvailabilityView, len(collected))
	for i, row := range collected {
		result[i] = &queries.HotelAvailabilityView{
			ID:            row.ID,
			Name:          row.Name,
			Location:      row.Location,
			Services:      nonNil(row.Services),
			RoomsQuantity: int(row.RoomsQuantity),
			ImageID:       int(row.ImageID),
			RoomsLeft:     int(row.RoomsLeft),
		}
	}
	return result, nil
}

func rangeArgs(period booking.DateRange, args pgx.NamedArgs) pgx.NamedArgs {
	args["date_from"] = pgconv.DateToPgtype(period.From())
	args["date_to"] = pgconv.DateToPgtype(period.To())
	return args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive substring pattern with LIKE
// wildcards in the input matched literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
