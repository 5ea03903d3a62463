package shared

import (
	"context"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/membership"
	"bay-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Memberships() MembershipRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	// SlotsByIDs returns the slots ordered by start time; missing ids are simply absent.
	SlotsByIDs(ctx context.Context, ids []int64) ([]*slot.Slot, error)
	SlotByID(ctx context.Context, id int64) (*slot.Slot, error)
	// SlotsFrom returns up to limit slots of the bay starting at or after from, ordered by start time.
	SlotsFrom(ctx context.Context, bayID int64, from time.Time, limit int) ([]*slot.Slot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	StalePendingBookingIDs(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)
	MembershipByUserID(ctx context.Context, userID uuid.UUID) (*membership.Membership, error)
}

// Slot writes are conditional updates; the returned count is the number of rows that matched.
// Callers compare it with the number they asked for.
type SlotRepository interface {
	ClaimAvailable(ctx context.Context, ids []int64) (int64, error)
	Release(ctx context.Context, ids []int64) (int64, error)
	SetStatus(ctx context.Context, id int64, from, to slot.Status) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// AttachSlots appends slots to a confirmed booking; it matches nothing (0) once the booking left confirmed.
	AttachSlots(ctx context.Context, bookingID uuid.UUID, refs []booking.SlotRef, firstPosition int, extraCents int64, at time.Time) (int64, error)
	// TransitionStatus moves a booking from -> to only if it is still in from.
	// A nil paymentID leaves the stored payment id untouched.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, paymentID *string, at time.Time) (int64, error)
}

type MembershipRepository interface {
	// ConsumeHours only succeeds (1 row) if enough hours remain in an active period.
	ConsumeHours(ctx context.Context, userID uuid.UUID, hours int, at time.Time) (int64, error)
	RestoreHours(ctx context.Context, userID uuid.UUID, hours int, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
