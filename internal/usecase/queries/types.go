package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BayView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type WindowView struct {
	BayID      int64     `json:"bay_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	SlotIDs    []int64   `json:"slot_ids"`
	Hours      int       `json:"hours"`
	PriceCents int64     `json:"price_cents"`
}

type BookingSlotView struct {
	SlotID    int64     `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type BookingView struct {
	ID             uuid.UUID         `json:"id"`
	UserID         *uuid.UUID        `json:"user_id,omitempty"`
	GuestName      *string           `json:"guest_name,omitempty"`
	GuestEmail     *string           `json:"guest_email,omitempty"`
	GuestPhone     *string           `json:"guest_phone,omitempty"`
	Status         string            `json:"status"`
	BookingTime    time.Time         `json:"booking_time"`
	PaymentID      *string           `json:"payment_id,omitempty"`
	AmountCents    int64             `json:"amount_cents"`
	AllowanceHours int               `json:"allowance_hours"`
	BayID          int64             `json:"bay_id"`
	BayName        string            `json:"bay_name"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	Slots          []BookingSlotView `json:"slots"`
	CancelledAt    *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
