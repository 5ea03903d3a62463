package commands

import (
	"context"
	"errors"
	"log/slog"

	"bay-booking/internal/domain/slot"
	"bay-booking/internal/domain/user"
	"bay-booking/internal/infra"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/shared"
)

type SlotCommands interface {
	// SetStatus blocks a slot out (unavailable) or reopens it (available).
	SetStatus(ctx context.Context, slotID int64, to slot.Status, actor user.Actor) error
}

type slotUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewSlotCommands(uow shared.UnitOfWork) SlotCommands {
	return &slotUseCaseImpl{uow: uow}
}

func (uc *slotUseCaseImpl) SetStatus(ctx context.Context, slotID int64, to slot.Status, actor user.Actor) error {
	if !actor.Has(user.CapBlockSlots) {
		return ErrForbidden
	}

	current, err := uc.uow.CommandReads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := current.CanSetStatus(to); err != nil {
		if errors.Is(err, slot.ErrSlotBooked) {
			return errs.Wrap(ErrSlotUnavailable, "slot is booked")
		}
		return errs.Mark(err, ErrValidation)
	}
	if current.Status() == to {
		return nil
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Slots().SetStatus(ctx, slotID, current.Status(), to)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if n == 0 {
			return ErrSlotUnavailable
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("slot status changed",
		"slot_id", slotID,
		"from", current.Status(),
		"to", to,
		"actor_id", actor.ID())
	return nil
}
