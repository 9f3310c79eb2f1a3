package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to no caching when REDIS_ADDR is unset.
// An unreachable Redis at startup is logged, not fatal.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) queries.AvailabilityCache {
	if !cfg.Redis.Enabled() {
		slog.Info("availability cache disabled")
		return queries.NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis not reachable, cache reads will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCache(client)
}
