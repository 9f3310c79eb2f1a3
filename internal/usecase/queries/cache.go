package queries

//go:generate mockgen -source=cache.go -destination=../../../tests/mock/queries/cache.go -package=queriesmock

import (
	"context"
	"time"
)

// AvailabilityCache is advisory: entries may be stale for up to their TTL
// and are never consulted by the reservation path.
type AvailabilityCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type noopCache struct{}

// NewNoopCache disables caching; every read goes to the store.
func NewNoopCache() AvailabilityCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
