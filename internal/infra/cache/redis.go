package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hotel-booking:"

// RedisCache stores availability answers as JSON. A miss and an expired
// entry look the same to callers.
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrapf(err, "redis get %s", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// a corrupt entry is treated as a miss and overwritten on the next Set
		return false, errs.Wrapf(err, "decode cached %s", key)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "encode %s", key)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis set %s", key)
	}
	return nil
}
