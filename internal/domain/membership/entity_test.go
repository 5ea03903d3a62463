//go:build unit

package membership_test

import (
	"testing"
	"time"

	"bay-booking/internal/domain/membership"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMembership(remaining int, periodEnd time.Time, status membership.Status) *membership.Membership {
	now := time.Now()
	return membership.ReconstructMembership(uuid.New(), "monthly", 4, remaining, periodEnd, status, now, now)
}

func TestMembership(t *testing.T) {
	now := time.Now()

	t.Run("active membership exposes remaining hours", func(t *testing.T) {
		m := newMembership(3, now.Add(24*time.Hour), membership.StatusActive)
		assert.Equal(t, 3, m.AvailableHoursAt(now))
	})

	t.Run("expired period grants nothing", func(t *testing.T) {
		m := newMembership(3, now.Add(-time.Minute), membership.StatusActive)
		assert.Equal(t, 0, m.AvailableHoursAt(now))
	})

	t.Run("past due grants nothing", func(t *testing.T) {
		m := newMembership(3, now.Add(24*time.Hour), membership.StatusPastDue)
		assert.Equal(t, 0, m.AvailableHoursAt(now))
	})

	t.Run("consume and restore", func(t *testing.T) {
		m := newMembership(3, now.Add(24*time.Hour), membership.StatusActive)

		require.NoError(t, m.Consume(2, now))
		assert.Equal(t, 1, m.HoursRemaining())
		assert.ErrorIs(t, m.Consume(2, now), membership.ErrInsufficientHours)
		assert.ErrorIs(t, m.Consume(0, now), membership.ErrInvalidHours)

		m.Restore(10, now)
		assert.Equal(t, 4, m.HoursRemaining())
	})
}
