// Written to match sqlc v1.29.0 output for bookings.sql (see sqlc.yaml).
// Keep in step with the query file; query_sync_test.go checks the names.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const addConfirmedBookingAmount = `-- name: AddConfirmedBookingAmount :execrows
UPDATE bookings
SET amount_cents = amount_cents + $1,
    updated_at   = $2
WHERE id = $3
  AND status = 'confirmed'
`

type AddConfirmedBookingAmountParams struct {
	ExtraCents int64              `json:"extra_cents"`
	ChangedAt  pgtype.Timestamptz `json:"changed_at"`
	ID         uuid.UUID          `json:"id"`
}

func (q *Queries) AddConfirmedBookingAmount(ctx context.Context, db DBTX, arg AddConfirmedBookingAmountParams) (int64, error) {
	result, err := db.Exec(ctx, addConfirmedBookingAmount, arg.ExtraCents, arg.ChangedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (
    id, user_id, guest_name, guest_email, guest_phone,
    status, booking_time, payment_id, amount_cents, allowance_hours,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10,
    $11, $11
)
`

type CreateBookingParams struct {
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
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.GuestName,
		arg.GuestEmail,
		arg.GuestPhone,
		arg.Status,
		arg.BookingTime,
		arg.PaymentID,
		arg.AmountCents,
		arg.AllowanceHours,
		arg.CreatedAt,
	)
	return err
}

const createBookingSlots = `-- name: CreateBookingSlots :exec
INSERT INTO booking_slots (booking_id, slot_id, position)
SELECT $1::uuid, unnest($2::bigint[]), unnest($3::int[])
`

type CreateBookingSlotsParams struct {
	BookingID uuid.UUID `json:"booking_id"`
	SlotIds   []int64   `json:"slot_ids"`
	Positions []int32   `json:"positions"`
}

func (q *Queries) CreateBookingSlots(ctx context.Context, db DBTX, arg CreateBookingSlotsParams) error {
	_, err := db.Exec(ctx, createBookingSlots, arg.BookingID, arg.SlotIds, arg.Positions)
	return err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT id, user_id, guest_name, guest_email, guest_phone, status, booking_time,
       payment_id, amount_cents, allowance_hours, cancelled_at, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.GuestName,
		&i.GuestEmail,
		&i.GuestPhone,
		&i.Status,
		&i.BookingTime,
		&i.PaymentID,
		&i.AmountCents,
		&i.AllowanceHours,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingByPaymentID = `-- name: GetBookingByPaymentID :one
SELECT id, user_id, guest_name, guest_email, guest_phone, status, booking_time,
       payment_id, amount_cents, allowance_hours, cancelled_at, created_at, updated_at
FROM bookings
WHERE payment_id = $1
`

func (q *Queries) GetBookingByPaymentID(ctx context.Context, db DBTX, paymentID pgtype.Text) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByPaymentID, paymentID)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.GuestName,
		&i.GuestEmail,
		&i.GuestPhone,
		&i.Status,
		&i.BookingTime,
		&i.PaymentID,
		&i.AmountCents,
		&i.AllowanceHours,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingSlotsByBookingIDs = `-- name: GetBookingSlotsByBookingIDs :many
SELECT bs.booking_id, bs.slot_id, bs.position, s.bay_id, b.name AS bay_name,
       s.start_time, s.end_time, s.status
FROM booking_slots bs
JOIN slots s ON s.id = bs.slot_id
JOIN bays b ON b.id = s.bay_id
WHERE bs.booking_id = ANY($1::uuid[])
ORDER BY bs.booking_id, bs.position
`

type GetBookingSlotsByBookingIDsRow struct {
	BookingID uuid.UUID          `json:"booking_id"`
	SlotID    int64              `json:"slot_id"`
	Position  int32              `json:"position"`
	BayID     int64              `json:"bay_id"`
	BayName   string             `json:"bay_name"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	Status    string             `json:"status"`
}

func (q *Queries) GetBookingSlotsByBookingIDs(ctx context.Context, db DBTX, bookingIds []uuid.UUID) ([]GetBookingSlotsByBookingIDsRow, error) {
	rows, err := db.Query(ctx, getBookingSlotsByBookingIDs, bookingIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GetBookingSlotsByBookingIDsRow{}
	for rows.Next() {
		var i GetBookingSlotsByBookingIDsRow
		if err := rows.Scan(
			&i.BookingID,
			&i.SlotID,
			&i.Position,
			&i.BayID,
			&i.BayName,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingsByUserIDFirstPage = `-- name: GetBookingsByUserIDFirstPage :many
SELECT id, user_id, guest_name, guest_email, guest_phone, status, booking_time,
       payment_id, amount_cents, allowance_hours, cancelled_at, created_at, updated_at
FROM bookings
WHERE user_id = $1
ORDER BY booking_time DESC, id DESC
LIMIT $2
`

type GetBookingsByUserIDFirstPageParams struct {
	UserID pgtype.UUID `json:"user_id"`
	Limit  int32       `json:"limit"`
}

func (q *Queries) GetBookingsByUserIDFirstPage(ctx context.Context, db DBTX, arg GetBookingsByUserIDFirstPageParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, getBookingsByUserIDFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bookings{}
	for rows.Next() {
		var i Bookings
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.GuestName,
			&i.GuestEmail,
			&i.GuestPhone,
			&i.Status,
			&i.BookingTime,
			&i.PaymentID,
			&i.AmountCents,
			&i.AllowanceHours,
			&i.CancelledAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingsByUserIDKeyset = `-- name: GetBookingsByUserIDKeyset :many
SELECT id, user_id, guest_name, guest_email, guest_phone, status, booking_time,
       payment_id, amount_cents, allowance_hours, cancelled_at, created_at, updated_at
FROM bookings
WHERE user_id = $1
  AND (booking_time, id) < ($2::timestamptz, $3::uuid)
ORDER BY booking_time DESC, id DESC
LIMIT $4
`

type GetBookingsByUserIDKeysetParams struct {
	UserID      pgtype.UUID        `json:"user_id"`
	BookingTime pgtype.Timestamptz `json:"booking_time"`
	ID          uuid.UUID          `json:"id"`
	Lim         int32              `json:"lim"`
}

func (q *Queries) GetBookingsByUserIDKeyset(ctx context.Context, db DBTX, arg GetBookingsByUserIDKeysetParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, getBookingsByUserIDKeyset,
		arg.UserID,
		arg.BookingTime,
		arg.ID,
		arg.Lim,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bookings{}
	for rows.Next() {
		var i Bookings
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.GuestName,
			&i.GuestEmail,
			&i.GuestPhone,
			&i.Status,
			&i.BookingTime,
			&i.PaymentID,
			&i.AmountCents,
			&i.AllowanceHours,
			&i.CancelledAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getStalePendingBookingIDs = `-- name: GetStalePendingBookingIDs :many
SELECT id
FROM bookings
WHERE status = 'pending'
  AND booking_time < $1
ORDER BY booking_time
LIMIT $2
`

type GetStalePendingBookingIDsParams struct {
	BookingTime pgtype.Timestamptz `json:"booking_time"`
	Limit       int32              `json:"limit"`
}

func (q *Queries) GetStalePendingBookingIDs(ctx context.Context, db DBTX, arg GetStalePendingBookingIDsParams) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, getStalePendingBookingIDs, arg.BookingTime, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const transitionBookingStatus = `-- name: TransitionBookingStatus :execrows
UPDATE bookings
SET status       = $1::text,
    payment_id   = COALESCE($2, payment_id),
    cancelled_at = CASE WHEN $1::text = 'cancelled' THEN $3::timestamptz ELSE cancelled_at END,
    updated_at   = $3::timestamptz
WHERE id = $4
  AND status = $5::text
`

type TransitionBookingStatusParams struct {
	ToStatus   string             `json:"to_status"`
	PaymentID  pgtype.Text        `json:"payment_id"`
	ChangedAt  pgtype.Timestamptz `json:"changed_at"`
	ID         uuid.UUID          `json:"id"`
	FromStatus string             `json:"from_status"`
}

func (q *Queries) TransitionBookingStatus(ctx context.Context, db DBTX, arg TransitionBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, transitionBookingStatus,
		arg.ToStatus,
		arg.PaymentID,
		arg.ChangedAt,
		arg.ID,
		arg.FromStatus,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
