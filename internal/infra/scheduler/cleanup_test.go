//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bay-booking/internal/infra/scheduler"
	commandsmock "bay-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCleanupScheduler(t *testing.T) {
	ctx := context.Background()

	t.Run("empty schedule is disabled", func(t *testing.T) {
		s, err := scheduler.NewCleanupScheduler("", nil)
		require.NoError(t, err)
		assert.False(t, s.Enabled())
		s.Start()
		assert.NoError(t, s.Stop(ctx))
	})

	t.Run("bad expression is rejected", func(t *testing.T) {
		_, err := scheduler.NewCleanupScheduler("every five minutes", nil)
		assert.Error(t, err)
	})

	t.Run("run once uses the configured ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cleanup := commandsmock.NewMockCleanupCommands(ctrl)
		cleanup.EXPECT().Expire(gomock.Any(), time.Duration(0)).Return(2, nil)

		s, err := scheduler.NewCleanupScheduler("*/5 * * * *", cleanup)
		require.NoError(t, err)
		assert.True(t, s.Enabled())

		cleaned, err := s.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, cleaned)
	})

	t.Run("run once surfaces failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cleanup := commandsmock.NewMockCleanupCommands(ctrl)
		cleanup.EXPECT().Expire(gomock.Any(), time.Duration(0)).Return(0, errors.New("db down"))

		s, err := scheduler.NewCleanupScheduler("*/5 * * * *", cleanup)
		require.NoError(t, err)
		_, err = s.RunOnce(ctx)
		assert.Error(t, err)
	})

	t.Run("stop after start", func(t *testing.T) {
		s, err := scheduler.NewCleanupScheduler("@every 1h", nil)
		require.NoError(t, err)
		s.Start()
		assert.NoError(t, s.Stop(ctx))
	})
}
