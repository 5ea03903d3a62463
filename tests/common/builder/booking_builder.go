//go:build unit || e2e

package builder

import (
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	reqdto "bay-booking/internal/handler/dto/request"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"
	"bay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	UserID         *uuid.UUID
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	Status         booking.Status
	BookingTime    time.Time
	PaymentID      *string
	AmountCents    int64
	AllowanceHours int
	Slots          []*slot.Slot
}

func NewBookingBuilder() *BookingBuilder {
	userID := uuid.New()
	paymentID := "pi_test_123"
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      &userID,
		Status:      booking.StatusConfirmed,
		BookingTime: time.Now().Add(-time.Minute),
		PaymentID:   &paymentID,
		AmountCents: 4500,
		Slots:       NewSlotBuilder().AsBooked().BuildRun(1),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) customer() booking.Customer {
	if b.UserID != nil {
		return booking.NewMemberCustomer(*b.UserID)
	}
	guest, err := booking.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		panic(err)
	}
	return booking.NewGuestCustomer(guest)
}

func (b *BookingBuilder) slotRefs() []booking.SlotRef {
	refs := make([]booking.SlotRef, len(b.Slots))
	for i, s := range b.Slots {
		refs[i] = booking.RefOf(s)
	}
	return refs
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	var cancelledAt *time.Time
	if b.Status == booking.StatusCancelled {
		t := b.BookingTime
		cancelledAt = &t
	}
	return booking.ReconstructBooking(
		b.ID,
		b.customer(),
		b.Status,
		b.BookingTime,
		b.PaymentID,
		booking.NewMoney(b.AmountCents),
		b.AllowanceHours,
		b.slotRefs(),
		cancelledAt,
		b.BookingTime,
		b.BookingTime,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	row := sqlc.Bookings{
		ID:             b.ID,
		UserID:         pgconv.UUIDPtrToPgtype(b.UserID),
		Status:         b.Status.String(),
		BookingTime:    pgconv.TimeToPgtype(b.BookingTime),
		PaymentID:      pgconv.StringPtrToPgtype(b.PaymentID),
		AmountCents:    b.AmountCents,
		AllowanceHours: int32(b.AllowanceHours),
		CreatedAt:      pgconv.TimeToPgtype(b.BookingTime),
		UpdatedAt:      pgconv.TimeToPgtype(b.BookingTime),
	}
	if b.UserID == nil {
		row.GuestName = pgconv.StringToPgtype(b.GuestName)
		row.GuestEmail = pgconv.StringToPgtype(b.GuestEmail)
		row.GuestPhone = pgconv.OptionalStringToPgtype(b.GuestPhone)
	}
	if b.Status == booking.StatusCancelled {
		row.CancelledAt = pgconv.TimeToPgtype(b.BookingTime)
	}
	return row
}

// BuildInfraSlots returns the joined booking_slots rows for the builder's slots.
func (b *BookingBuilder) BuildInfraSlots(bayName string) []sqlc.GetBookingSlotsByBookingIDsRow {
	rows := make([]sqlc.GetBookingSlotsByBookingIDsRow, len(b.Slots))
	for i, s := range b.Slots {
		rows[i] = sqlc.GetBookingSlotsByBookingIDsRow{
			BookingID: b.ID,
			SlotID:    s.ID(),
			Position:  int32(i),
			BayID:     s.BayID(),
			BayName:   bayName,
			StartTime: pgconv.TimeToPgtype(s.Start()),
			EndTime:   pgconv.TimeToPgtype(s.End()),
			Status:    s.Status().String(),
		}
	}
	return rows
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	v := &queries.BookingView{
		ID:             b.ID,
		UserID:         b.UserID,
		Status:         b.Status.String(),
		BookingTime:    b.BookingTime,
		PaymentID:      b.PaymentID,
		AmountCents:    b.AmountCents,
		AllowanceHours: b.AllowanceHours,
		BayName:        "Bay 1",
		CreatedAt:      b.BookingTime,
		UpdatedAt:      b.BookingTime,
	}
	if b.UserID == nil {
		v.GuestName, v.GuestEmail = &b.GuestName, &b.GuestEmail
	}
	for _, s := range b.Slots {
		v.Slots = append(v.Slots, queries.BookingSlotView{SlotID: s.ID(), StartTime: s.Start(), EndTime: s.End()})
	}
	if n := len(b.Slots); n > 0 {
		v.BayID = b.Slots[0].BayID()
		v.StartTime = b.Slots[0].Start()
		v.EndTime = b.Slots[n-1].End()
	}
	return v
}

// BuildCheckoutRequestDTO selects the builder's slots as a guest checkout.
func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	ids := make([]int64, len(b.Slots))
	for i, s := range b.Slots {
		ids[i] = s.ID()
	}
	return reqdto.CheckoutRequest{
		SlotIDs: ids,
		Guest: &reqdto.GuestRequest{
			Name:  "Sam Guest",
			Email: "sam@example.com",
			Phone: "+44 20 7946 0000",
		},
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = &userID
	return b
}

func (b *BookingBuilder) AsGuest() *BookingBuilder {
	b.UserID = nil
	b.GuestName = "Sam Guest"
	b.GuestEmail = "guest@example.com"
	b.GuestPhone = "+44 7700 900000"
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsPending() *BookingBuilder {
	b.Status = booking.StatusPending
	b.PaymentID = nil
	return b
}

func (b *BookingBuilder) WithBookingTime(t time.Time) *BookingBuilder {
	b.BookingTime = t
	return b
}

func (b *BookingBuilder) WithPaymentID(id string) *BookingBuilder {
	b.PaymentID = &id
	return b
}

func (b *BookingBuilder) WithoutPayment() *BookingBuilder {
	b.PaymentID = nil
	b.AmountCents = 0
	return b
}

func (b *BookingBuilder) WithSlots(slots ...*slot.Slot) *BookingBuilder {
	b.Slots = slots
	return b
}

func (b *BookingBuilder) WithAllowanceHours(h int) *BookingBuilder {
	b.AllowanceHours = h
	return b
}
