package ratelimit

import (
	"context"
	"time"
)

type Decision struct {
	Allowed bool
	// RetryAfter is zero when Allowed.
	RetryAfter time.Duration
}

// Limiter counts requests per key within a rolling allowance.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type Policy struct {
	Requests int
	Window   time.Duration
}
