package bootstrap

import (
	"context"
	"log/slog"

	"bay-booking/internal/infra/scheduler"
	"bay-booking/internal/pkg/config"
	"bay-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewCleanupScheduler,
	),
	fx.Invoke(func(*scheduler.CleanupScheduler) {}),
)

func NewCleanupScheduler(lc fx.Lifecycle, cfg config.Config, cleanup commands.CleanupCommands, logger *slog.Logger) (*scheduler.CleanupScheduler, error) {
	s, err := scheduler.NewCleanupScheduler(cfg.Cron.CleanupSchedule, cleanup)
	if err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return s, nil
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Scheduling cleanup", "schedule", cfg.Cron.CleanupSchedule)
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s, nil
}
