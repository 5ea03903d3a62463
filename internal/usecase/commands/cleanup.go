package commands

import (
	"context"
	"log/slog"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CleanupCommands interface {
	// Expire cancels pending holds older than threshold and frees their slots.
	// A non-positive threshold uses the configured pending TTL.
	Expire(ctx context.Context, threshold time.Duration) (int, error)
}

type cleanupUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings BookingSettings
}

func NewCleanupCommands(uow shared.UnitOfWork, clk clock.Clock, settings BookingSettings) CleanupCommands {
	return &cleanupUseCaseImpl{
		uow:      uow,
		clock:    clk,
		settings: settings.withDefaults(),
	}
}

func (uc *cleanupUseCaseImpl) Expire(ctx context.Context, threshold time.Duration) (int, error) {
	if threshold <= 0 {
		threshold = uc.settings.PendingTTL
	}
	now := uc.clock.Now()
	cutoff := now.Add(-threshold)

	ids, err := uc.uow.CommandReads().StalePendingBookingIDs(ctx, cutoff, expireBatchSize)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cleaned := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return cleaned, err
		}

		released := false
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			released, err = releaseHold(ctx, tx, id, func(b *booking.Booking) bool {
				return b.IsStalePending(now, threshold)
			}, now)
			return err
		})
		if err != nil {
			slog.Warn("failed to expire pending booking", "booking_id", id, "error", err)
			continue
		}
		if released {
			cleaned++
		}
	}

	if cleaned > 0 {
		slog.Info("expired pending bookings", "cleaned", cleaned, "threshold", threshold.String())
	}
	return cleaned, nil
}

// releaseHold cancels a pending booking and frees its slots when eligible accepts it.
// It reports false without error when the booking is no longer a pending hold.
func releaseHold(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	eligible func(*booking.Booking) bool,
	now time.Time,
) (bool, error) {
	b, err := loadBooking(ctx, tx.Reads(), id)
	if err != nil {
		return false, err
	}
	if b.Status() != booking.StatusPending || !eligible(b) {
		return false, nil
	}

	n, err := tx.Bookings().TransitionStatus(ctx, id, booking.StatusPending, booking.StatusCancelled, nil, now)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if n == 0 {
		return false, nil
	}
	if err := releaseSlots(ctx, tx, b); err != nil {
		return false, err
	}
	if err := restoreAllowance(ctx, tx, b, now); err != nil {
		return false, err
	}
	return true, nil
}

func restoreAllowance(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	if b.AllowanceHours() <= 0 || b.UserID() == nil {
		return nil
	}
	if err := tx.Memberships().RestoreHours(ctx, *b.UserID(), b.AllowanceHours(), now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
