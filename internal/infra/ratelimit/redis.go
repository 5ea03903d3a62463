package ratelimit

import (
	"context"
	"log/slog"

	"bay-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter is a fixed-window counter shared by every instance pointing at the same Redis.
type RedisLimiter struct {
	client redis.Cmdable
	policy Policy
}

func NewRedisLimiter(client redis.Cmdable, policy Policy) *RedisLimiter {
	return &RedisLimiter{client: client, policy: policy}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := redisKeyPrefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return Decision{}, errs.Wrap(err, "incrementing rate limit counter")
	}
	// First hit opens the window.
	if count == 1 {
		if err := l.client.PExpire(ctx, k, l.policy.Window).Err(); err != nil {
			return Decision{}, errs.Wrap(err, "setting rate limit window")
		}
	}
	if count <= int64(l.policy.Requests) {
		return Decision{Allowed: true}, nil
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return Decision{}, errs.Wrap(err, "reading rate limit window")
	}
	if ttl < 0 {
		// A lost PEXPIRE would leave the key forever; reopen it.
		if err := l.client.PExpire(ctx, k, l.policy.Window).Err(); err != nil {
			slog.Warn("failed to reopen rate limit window", "key", k, "error", err)
		}
		ttl = l.policy.Window
	}
	return Decision{RetryAfter: ttl}, nil
}
