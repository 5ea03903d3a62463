//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := t0

	l := NewMemoryLimiter(Policy{Requests: 2, Window: time.Minute})
	l.now = func() time.Time { return now }

	t.Run("burst up to the request count", func(t *testing.T) {
		for range 2 {
			d, err := l.Allow(ctx, "bookings|10.0.0.1")
			require.NoError(t, err)
			assert.True(t, d.Allowed)
		}

		d, err := l.Allow(ctx, "bookings|10.0.0.1")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.InDelta(t, float64(30*time.Second), float64(d.RetryAfter), float64(time.Millisecond))
	})

	t.Run("other keys have their own bucket", func(t *testing.T) {
		d, err := l.Allow(ctx, "bookings|10.0.0.2")
		require.NoError(t, err)
		assert.True(t, d.Allowed)

		d, err = l.Allow(ctx, "bays|10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("refills over time", func(t *testing.T) {
		now = t0.Add(31 * time.Second)
		d, err := l.Allow(ctx, "bookings|10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("idle buckets are swept", func(t *testing.T) {
		assert.Equal(t, 3, l.size())
		now = t0.Add(3 * time.Hour)
		_, err := l.Allow(ctx, "bookings|10.0.0.9")
		require.NoError(t, err)
		assert.Equal(t, 1, l.size())
	})
}
