package booking

import (
	"errors"
	"time"

	"bay-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrNoSlots           = errors.New("booking has no slots")
)

type Booking struct {
	id             uuid.UUID
	customer       Customer
	status         Status
	bookingTime    time.Time
	paymentID      *string
	amount         Money
	allowanceHours int
	slots          []SlotRef
	cancelledAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking creates a pending hold over the window's slots.
func NewBooking(customer Customer, window slot.Window, slots []*slot.Slot, quote Quote, now time.Time) (*Booking, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(slots) == 0 || len(slots) != len(window.SlotIDs) {
		return nil, ErrNoSlots
	}
	refs := make([]SlotRef, len(slots))
	for i, s := range slots {
		refs[i] = RefOf(s)
	}
	return &Booking{
		id:             uuid.New(),
		customer:       customer,
		status:         StatusPending,
		bookingTime:    now,
		amount:         quote.Amount,
		allowanceHours: quote.AllowanceHours,
		slots:          refs,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	customer Customer,
	status Status,
	bookingTime time.Time,
	paymentID *string,
	amount Money,
	allowanceHours int,
	slots []SlotRef,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		customer:       customer,
		status:         status,
		bookingTime:    bookingTime,
		paymentID:      paymentID,
		amount:         amount,
		allowanceHours: allowanceHours,
		slots:          slots,
		cancelledAt:    cancelledAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) transition(to Status, now time.Time) error {
	if !b.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	b.status = to
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(paymentID *string, now time.Time) error {
	if err := b.transition(StatusConfirmed, now); err != nil {
		return err
	}
	b.paymentID = paymentID
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if err := b.transition(StatusCancelled, now); err != nil {
		return err
	}
	b.cancelledAt = &now
	return nil
}

func (b *Booking) Extend(slots []*slot.Slot, extra Money, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	for _, s := range slots {
		b.slots = append(b.slots, RefOf(s))
	}
	b.amount = b.amount.Add(extra)
	b.updatedAt = now
	return nil
}

// IsStalePending reports a pending hold placed before now minus threshold.
func (b *Booking) IsStalePending(now time.Time, threshold time.Duration) bool {
	return b.status == StatusPending && b.bookingTime.Before(now.Add(-threshold))
}

// IsActiveAt reports a confirmed booking whose play time, widened by grace, contains now.
func (b *Booking) IsActiveAt(now time.Time, grace time.Duration) bool {
	if b.status != StatusConfirmed || len(b.slots) == 0 {
		return false
	}
	from := b.FirstSlotStart().Add(-grace)
	to := b.LastSlotEnd().Add(grace)
	return !now.Before(from) && !now.After(to)
}

func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.customer.userID != nil && *b.customer.userID == userID
}

func (b *Booking) HasPayment() bool {
	return b.paymentID != nil && *b.paymentID != ""
}

func (b *Booking) SlotIDs() []int64 {
	ids := make([]int64, len(b.slots))
	for i, s := range b.slots {
		ids[i] = s.SlotID
	}
	return ids
}

func (b *Booking) BayID() int64 {
	if len(b.slots) == 0 {
		return 0
	}
	return b.slots[0].BayID
}

func (b *Booking) FirstSlotStart() time.Time {
	if len(b.slots) == 0 {
		return time.Time{}
	}
	return b.slots[0].Start
}

func (b *Booking) LastSlotEnd() time.Time {
	if len(b.slots) == 0 {
		return time.Time{}
	}
	return b.slots[len(b.slots)-1].End
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Customer() Customer      { return b.customer }
func (b *Booking) UserID() *uuid.UUID      { return b.customer.userID }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) BookingTime() time.Time  { return b.bookingTime }
func (b *Booking) PaymentID() *string      { return b.paymentID }
func (b *Booking) Amount() Money           { return b.amount }
func (b *Booking) AllowanceHours() int     { return b.allowanceHours }
func (b *Booking) Slots() []SlotRef        { return b.slots }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
