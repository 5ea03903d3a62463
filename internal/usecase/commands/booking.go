package commands

import (
	"context"
	"log/slog"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/domain/user"
	"bay-booking/internal/infra"
	"bay-booking/internal/pkg/clock"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveResult struct {
	BookingID uuid.UUID
	Window    slot.Window
	Quote     booking.Quote
}

type ConfirmResult struct {
	BookingID uuid.UUID
	Replayed  bool
}

type CancelResult struct {
	BookingID    uuid.UUID
	RefundStatus booking.RefundStatus
}

type ExtendResult struct {
	BookingID    uuid.UUID
	AddedSlotIDs []int64
	Window       slot.Window
	Quote        booking.Quote
}

type BookingCommands interface {
	Reserve(ctx context.Context, slotIDs []int64, customer booking.Customer) (*ReserveResult, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, paymentID *string) (*ConfirmResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*CancelResult, error)
	Extend(ctx context.Context, bookingID uuid.UUID, hours int, actor user.Actor) (*ExtendResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments PaymentGateway
	pricing  booking.PriceCalculator
	clock    clock.Clock
	settings BookingSettings
	refunds  booking.RefundPolicy
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	payments PaymentGateway,
	pricing booking.PriceCalculator,
	clk clock.Clock,
	settings BookingSettings,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		payments: payments,
		pricing:  pricing,
		clock:    clk,
		settings: settings.withDefaults(),
		refunds:  booking.NewRefundPolicy(settings.RefundWindow),
	}
}

func (uc *bookingUseCaseImpl) Reserve(ctx context.Context, slotIDs []int64, customer booking.Customer) (*ReserveResult, error) {
	if err := validateSlotSelection(slotIDs); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	reads := uc.uow.CommandReads()
	slots, err := reads.SlotsByIDs(ctx, slotIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(slots) != len(slotIDs) {
		return nil, ErrSlotNotFound
	}

	// Clients send ids from a rendered window, but the window may be stale or forged.
	window, err := slot.ToWindow(slots)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	now := uc.clock.Now()
	for _, s := range slots {
		if !s.IsAvailable() {
			return nil, ErrSlotUnavailable
		}
		if s.HasStarted(now) {
			return nil, errs.Wrap(ErrSlotUnavailable, "slot has already started")
		}
	}

	allowance, err := uc.allowanceFor(ctx, reads, customer)
	if err != nil {
		return nil, err
	}
	quote := uc.pricing.Quote(window, allowance)

	b, err := booking.NewBooking(customer, window, slots, quote, now)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Slots().ClaimAvailable(ctx, window.SlotIDs)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if claimed != int64(len(window.SlotIDs)) {
			return ErrSlotUnavailable
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if quote.AllowanceHours > 0 {
			n, err := tx.Memberships().ConsumeHours(ctx, *customer.UserID(), quote.AllowanceHours, now)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if n != 1 {
				return ErrMembershipHoursChanged
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking reserved",
		"booking_id", b.ID(),
		"slot_ids", window.SlotIDs,
		"amount_cents", quote.Amount.Cents(),
		"allowance_hours", quote.AllowanceHours)

	return &ReserveResult{BookingID: b.ID(), Window: window, Quote: quote}, nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID uuid.UUID, paymentID *string) (*ConfirmResult, error) {
	if paymentID != nil && *paymentID == "" {
		paymentID = nil
	}

	current, err := loadBooking(ctx, uc.uow.CommandReads(), bookingID)
	if err != nil {
		return nil, err
	}

	switch current.Status() {
	case booking.StatusConfirmed:
		return &ConfirmResult{BookingID: bookingID, Replayed: true}, nil
	case booking.StatusCancelled:
		uc.refundLatePayment(ctx, current, paymentID)
		return nil, ErrInvalidTransition
	}

	now := uc.clock.Now()
	var replayed bool
	var lost *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed, lost = false, nil

		n, err := tx.Bookings().TransitionStatus(ctx, bookingID, booking.StatusPending, booking.StatusConfirmed, paymentID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return invalid("payment is already attached to another booking")
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if n == 0 {
			// Lost a race with another confirm, a cancel or the cleanup job.
			latest, err := loadBooking(ctx, tx.Reads(), bookingID)
			if err != nil {
				return err
			}
			replayed = latest.Status() == booking.StatusConfirmed
			if !replayed {
				lost = latest
			}
			return nil
		}

		if err := enqueueBookingJob(ctx, tx, topicBookingConfirmed, bookingID, nil, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if lost != nil {
		uc.refundLatePayment(ctx, lost, paymentID)
		return nil, ErrInvalidTransition
	}
	if !replayed {
		slog.Info("booking confirmed", "booking_id", bookingID, "paid", paymentID != nil)
	}
	return &ConfirmResult{BookingID: bookingID, Replayed: replayed}, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*CancelResult, error) {
	current, err := loadBooking(ctx, uc.uow.CommandReads(), bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(current.UserID(), user.CapCancelOwn, user.CapCancelAny) {
		return nil, ErrForbidden
	}
	if !current.Status().CanTransitionTo(booking.StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	now := uc.clock.Now()
	eligible := uc.refunds.Eligible(current.FirstSlotStart(), now)
	// An unpaid hold always gives its hours back; a confirmed booking follows the refund window.
	restoreHours := current.Status() == booking.StatusPending || eligible

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().TransitionStatus(ctx, bookingID, current.Status(), booking.StatusCancelled, nil, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if n == 0 {
			return ErrInvalidTransition
		}
		if err := releaseSlots(ctx, tx, current); err != nil {
			return err
		}
		if restoreHours {
			if err := restoreAllowance(ctx, tx, current, now); err != nil {
				return err
			}
		}
		extra := map[string]any{"cancelled_by": actor.ID(), "role": actor.Role().String()}
		if err := enqueueBookingJob(ctx, tx, topicBookingCancelled, bookingID, extra, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	status := uc.settleRefund(ctx, current, eligible)
	slog.Info("booking cancelled",
		"booking_id", bookingID,
		"actor_id", actor.ID(),
		"refund_status", status)

	return &CancelResult{BookingID: bookingID, RefundStatus: status}, nil
}

func (uc *bookingUseCaseImpl) Extend(ctx context.Context, bookingID uuid.UUID, hours int, actor user.Actor) (*ExtendResult, error) {
	if !actor.Has(user.CapExtendBooking) {
		return nil, ErrForbidden
	}
	if hours < 1 || hours > 2 {
		return nil, invalid("hours must be 1 or 2")
	}

	reads := uc.uow.CommandReads()
	current, err := loadBooking(ctx, reads, bookingID)
	if err != nil {
		return nil, err
	}
	if current.Status() != booking.StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	now := uc.clock.Now()
	if !current.IsActiveAt(now, uc.settings.ExtendGrace) {
		return nil, invalid("booking is not currently in play")
	}

	next, err := reads.SlotsFrom(ctx, current.BayID(), current.LastSlotEnd(), hours)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := validateExtension(current, next, hours); err != nil {
		return nil, err
	}
	next = next[:hours]

	window, err := slot.ToWindow(next)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotUnavailable)
	}
	quote := uc.pricing.Quote(window, 0)

	refs := make([]booking.SlotRef, len(next))
	for i, s := range next {
		refs[i] = booking.RefOf(s)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Slots().ClaimAvailable(ctx, window.SlotIDs)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if claimed != int64(len(window.SlotIDs)) {
			return ErrSlotUnavailable
		}
		n, err := tx.Bookings().AttachSlots(ctx, bookingID, refs, len(current.Slots()), quote.Amount.Cents(), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if n == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking extended",
		"booking_id", bookingID,
		"added_slot_ids", window.SlotIDs,
		"actor_id", actor.ID())

	return &ExtendResult{
		BookingID:    bookingID,
		AddedSlotIDs: window.SlotIDs,
		Window:       window,
		Quote:        quote,
	}, nil
}

func (uc *bookingUseCaseImpl) allowanceFor(ctx context.Context, reads shared.CommandReads, customer booking.Customer) (int, error) {
	if customer.UserID() == nil {
		return 0, nil
	}
	m, err := reads.MembershipByUserID(ctx, *customer.UserID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return m.AvailableHoursAt(uc.clock.Now()), nil
}

func (uc *bookingUseCaseImpl) settleRefund(ctx context.Context, b *booking.Booking, eligible bool) booking.RefundStatus {
	if !b.HasPayment() {
		return booking.RefundNotApplicable
	}
	if !eligible {
		return booking.RefundNotRefundedPolicy
	}
	paymentID := *b.PaymentID()
	if err := uc.payments.Refund(ctx, paymentID); err != nil {
		slog.Warn("refund failed after cancellation",
			"booking_id", b.ID(),
			"payment_id", paymentID,
			"error", err)
		uc.recordRefundFailure(ctx, b.ID(), paymentID, err)
		return booking.RefundFailed
	}
	return booking.RefundRefunded
}

// refundLatePayment returns money that arrived after the hold was released.
// A booking that was paid before it was cancelled has already been settled by
// Cancel, so a repeated payment id never triggers a second refund.
func (uc *bookingUseCaseImpl) refundLatePayment(ctx context.Context, released *booking.Booking, paymentID *string) {
	if paymentID == nil || released.PaymentID() != nil {
		return
	}
	bookingID := released.ID()
	if err := uc.payments.Refund(ctx, *paymentID); err != nil {
		slog.Error("failed to refund payment for released booking",
			"booking_id", bookingID,
			"payment_id", *paymentID,
			"error", err)
		uc.recordRefundFailure(ctx, bookingID, *paymentID, err)
		return
	}
	slog.Warn("refunded payment for released booking", "booking_id", bookingID, "payment_id", *paymentID)
}

func (uc *bookingUseCaseImpl) recordRefundFailure(ctx context.Context, bookingID uuid.UUID, paymentID string, cause error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		extra := map[string]any{"payment_id": paymentID, "error": cause.Error()}
		return enqueueBookingJob(ctx, tx, topicRefundFailed, bookingID, extra, uc.clock.Now())
	})
	if err != nil {
		slog.Error("failed to enqueue refund failure job", "booking_id", bookingID, "error", err)
	}
}

func validateSlotSelection(ids []int64) error {
	if len(ids) == 0 {
		return invalid("at least one slot is required")
	}
	if len(ids) > slot.MaxWindowSlots {
		return invalid("a booking spans at most 3 slots")
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return invalid("slot ids must be positive")
		}
		if _, dup := seen[id]; dup {
			return invalid("slot selected more than once")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateExtension(b *booking.Booking, next []*slot.Slot, hours int) error {
	if len(next) < hours {
		return errs.Wrap(ErrSlotUnavailable, "no following slot to extend into")
	}
	prevEnd := b.LastSlotEnd()
	for _, s := range next[:hours] {
		if !s.Start().Equal(prevEnd) || !s.IsAvailable() {
			return ErrSlotUnavailable
		}
		prevEnd = s.End()
	}
	return nil
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func releaseSlots(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	ids := b.SlotIDs()
	n, err := tx.Slots().Release(ctx, ids)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if n != int64(len(ids)) {
		slog.Warn("some booking slots were not in booked state",
			"booking_id", b.ID(),
			"slot_ids", ids,
			"released", n)
	}
	return nil
}
