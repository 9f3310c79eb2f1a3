//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	endpoint, err := c.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

type roomsLeft struct {
	RoomID    string `json:"room_id"`
	RoomsLeft int    `json:"rooms_left"`
}

func TestRedisCache(t *testing.T) {
	client := startRedis(t)
	c := cache.NewRedisCache(client)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		var got roomsLeft
		hit, err := c.Get(ctx, "room:absent", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("set then get", func(t *testing.T) {
		want := []roomsLeft{{RoomID: "a", RoomsLeft: 2}, {RoomID: "b", RoomsLeft: -1}}
		require.NoError(t, c.Set(ctx, "location:altai", want, time.Minute))

		var got []roomsLeft
		hit, err := c.Get(ctx, "location:altai", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, want, got)

		ttl, err := client.TTL(ctx, "hotel-booking:location:altai").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "room:short", 3, 50*time.Millisecond))
		time.Sleep(150 * time.Millisecond)

		var got int
		hit, err := c.Get(ctx, "room:short", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("corrupt entry reports an error", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "hotel-booking:room:bad", "{", time.Minute).Err())

		var got int
		hit, err := c.Get(ctx, "room:bad", &got)
		assert.Error(t, err)
		assert.False(t, hit)
	})
}
