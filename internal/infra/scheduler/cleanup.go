package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

// CleanupScheduler runs hold expiry in process for deployments without a platform cron.
// A nil cron means the job is disabled.
type CleanupScheduler struct {
	cron    *cron.Cron
	cleanup commands.CleanupCommands
}

func NewCleanupScheduler(schedule string, cleanup commands.CleanupCommands) (*CleanupScheduler, error) {
	s := &CleanupScheduler{cleanup: cleanup}
	if schedule == "" {
		return s, nil
	}

	logger := slogCronLogger{logger: slog.Default().With("component", "cleanup-cron")}
	c := cron.New(cron.WithLogger(logger), cron.WithChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	))
	if _, err := c.AddFunc(schedule, s.runJob); err != nil {
		return nil, errs.Wrapf(err, "invalid cleanup schedule %q", schedule)
	}
	s.cron = c
	return s, nil
}

func (s *CleanupScheduler) Enabled() bool {
	return s.cron != nil
}

func (s *CleanupScheduler) Start() {
	if s.cron == nil {
		slog.Info("In-process cleanup disabled; expecting the platform cron")
		return
	}
	s.cron.Start()
	slog.Info("Cleanup scheduler started")
}

// Stop waits for a running job until ctx is done.
func (s *CleanupScheduler) Stop(ctx context.Context) error {
	if s.cron == nil {
		return nil
	}
	select {
	case <-s.cron.Stop().Done():
		slog.Info("Cleanup scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce expires stale holds using the configured pending TTL.
func (s *CleanupScheduler) RunOnce(ctx context.Context) (int, error) {
	cleaned, err := s.cleanup.Expire(ctx, 0)
	if err != nil {
		return 0, err
	}
	if cleaned > 0 {
		slog.Info("Expired stale pending bookings", "cleaned", cleaned)
	}
	return cleaned, nil
}

func (s *CleanupScheduler) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		slog.Error("Scheduled cleanup failed", "error", err)
	}
}

type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
