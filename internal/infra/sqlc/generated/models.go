// Written to match sqlc v1.29.0 output for sqlc.yaml.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bays struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Capacity  int32              `json:"capacity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type BookingSlots struct {
	BookingID uuid.UUID `json:"booking_id"`
	SlotID    int64     `json:"slot_id"`
	Position  int32     `json:"position"`
}

type Bookings struct {
	ID             uuid.UUID          `json:"id"`
	UserID         pgtype.UUID        `json:"user_id"`
	GuestName      pgtype.Text        `json:"guest_name"`
	GuestEmail     pgtype.Text        `json:"guest_email"`
	GuestPhone     pgtype.Text        `json:"guest_phone"`
	Status         string             `json:"status"`
	BookingTime    pgtype.Timestamptz `json:"booking_time"`
	PaymentID      pgtype.Text        `json:"payment_id"`
	AmountCents    int64              `json:"amount_cents"`
	AllowanceHours int32              `json:"allowance_hours"`
	CancelledAt    pgtype.Timestamptz `json:"cancelled_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Memberships struct {
	UserID         uuid.UUID          `json:"user_id"`
	Plan           string             `json:"plan"`
	IncludedHours  int32              `json:"included_hours"`
	HoursRemaining int32              `json:"hours_remaining"`
	PeriodEnd      pgtype.Timestamptz `json:"period_end"`
	Status         string             `json:"status"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Slots struct {
	ID        int64              `json:"id"`
	BayID     int64              `json:"bay_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
