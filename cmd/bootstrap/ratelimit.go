package bootstrap

import (
	"context"
	"log/slog"

	"bay-booking/internal/infra/ratelimit"
	"bay-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter shares counters through Redis when REDIS_ADDR is set and
// falls back to per-process buckets otherwise.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) ratelimit.Limiter {
	policy := ratelimit.Policy{Requests: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window}

	if cfg.RateLimit.RedisAddr == "" {
		logger.Info("Rate limiting in memory", "requests", policy.Requests, "window", policy.Window.String())
		return ratelimit.NewMemoryLimiter(policy)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RateLimit.RedisAddr,
		Password: cfg.RateLimit.RedisPassword,
		DB:       cfg.RateLimit.RedisDB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Unreachable Redis is not fatal, the middleware fails open.
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed", "addr", cfg.RateLimit.RedisAddr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("Rate limiting via Redis", "addr", cfg.RateLimit.RedisAddr, "requests", policy.Requests, "window", policy.Window.String())
	return ratelimit.NewRedisLimiter(client, policy)
}
