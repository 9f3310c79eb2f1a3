//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type HotelSeed struct {
	Name          string
	Location      string
	Services      []string
	RoomsQuantity int
}

type RoomSeed struct {
	HotelID     uuid.UUID
	Name        string
	Description string
	Price       int64
	Quantity    int
	Services    []string
}

func CreateHotel(t *testing.T, db DBLike, seed HotelSeed) uuid.UUID {
	t.Helper()

	if seed.Name == "" {
		seed.Name = "Hotel " + uuid.NewString()[:8]
	}
	services, err := json.Marshal(nonNil(seed.Services))
	require.NoError(t, err)

	var id uuid.UUID
	err = db.QueryRow(context.Background(),
		`INSERT INTO hotels (name, location, services, rooms_quantity, image_id)
		 VALUES ($1, $2, $3::jsonb, $4, 1) RETURNING id`,
		seed.Name, seed.Location, string(services), seed.RoomsQuantity,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateRoom(t *testing.T, db DBLike, seed RoomSeed) uuid.UUID {
	t.Helper()

	if seed.Name == "" {
		seed.Name = "Room " + uuid.NewString()[:8]
	}
	services, err := json.Marshal(nonNil(seed.Services))
	require.NoError(t, err)

	var id uuid.UUID
	err = db.QueryRow(context.Background(),
		`INSERT INTO rooms (hotel_id, name, description, price, services, quantity, image_id)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, 1) RETURNING id`,
		seed.HotelID, seed.Name, seed.Description, seed.Price, string(services), seed.Quantity,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateBooking inserts a booking directly, bypassing the capacity check.
// Dates are YYYY-MM-DD.
func CreateBooking(t *testing.T, db DBLike, roomID, userID uuid.UUID, from, to string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (room_id, user_id, date_from, date_to, price)
		 SELECT $1, $2, $3::date, $4::date, r.price FROM rooms r WHERE r.id = $1
		 RETURNING id`,
		roomID, userID, from, to,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ResetDB empties the booking schema; schema_migrations is left alone.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, `TRUNCATE bookings, rooms, hotels RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	return nil
}
