// Written to match sqlc v1.29.0 output for slots.sql (see sqlc.yaml).
// Keep in step with the query file; query_sync_test.go checks the names.

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const claimAvailableSlots = `-- name: ClaimAvailableSlots :execrows
UPDATE slots
SET status = 'booked', updated_at = now()
WHERE id = ANY($1::bigint[])
  AND status = 'available'
`

func (q *Queries) ClaimAvailableSlots(ctx context.Context, db DBTX, ids []int64) (int64, error) {
	result, err := db.Exec(ctx, claimAvailableSlots, ids)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getSlotByID = `-- name: GetSlotByID :one
SELECT id, bay_id, start_time, end_time, status, created_at, updated_at
FROM slots
WHERE id = $1
`

func (q *Queries) GetSlotByID(ctx context.Context, db DBTX, id int64) (Slots, error) {
	row := db.QueryRow(ctx, getSlotByID, id)
	var i Slots
	err := row.Scan(
		&i.ID,
		&i.BayID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getSlotsByBayBetween = `-- name: GetSlotsByBayBetween :many
SELECT id, bay_id, start_time, end_time, status, created_at, updated_at
FROM slots
WHERE bay_id = $1
  AND start_time >= $2
  AND start_time < $3
ORDER BY start_time
`

type GetSlotsByBayBetweenParams struct {
	BayID    int64              `json:"bay_id"`
	FromTime pgtype.Timestamptz `json:"from_time"`
	ToTime   pgtype.Timestamptz `json:"to_time"`
}

func (q *Queries) GetSlotsByBayBetween(ctx context.Context, db DBTX, arg GetSlotsByBayBetweenParams) ([]Slots, error) {
	rows, err := db.Query(ctx, getSlotsByBayBetween, arg.BayID, arg.FromTime, arg.ToTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Slots{}
	for rows.Next() {
		var i Slots
		if err := rows.Scan(
			&i.ID,
			&i.BayID,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
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

const getSlotsByIDs = `-- name: GetSlotsByIDs :many
SELECT id, bay_id, start_time, end_time, status, created_at, updated_at
FROM slots
WHERE id = ANY($1::bigint[])
ORDER BY start_time, id
`

func (q *Queries) GetSlotsByIDs(ctx context.Context, db DBTX, ids []int64) ([]Slots, error) {
	rows, err := db.Query(ctx, getSlotsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Slots{}
	for rows.Next() {
		var i Slots
		if err := rows.Scan(
			&i.ID,
			&i.BayID,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
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

const getSlotsFrom = `-- name: GetSlotsFrom :many
SELECT id, bay_id, start_time, end_time, status, created_at, updated_at
FROM slots
WHERE bay_id = $1
  AND start_time >= $2
ORDER BY start_time
LIMIT $3
`

type GetSlotsFromParams struct {
	BayID     int64              `json:"bay_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) GetSlotsFrom(ctx context.Context, db DBTX, arg GetSlotsFromParams) ([]Slots, error) {
	rows, err := db.Query(ctx, getSlotsFrom, arg.BayID, arg.StartTime, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Slots{}
	for rows.Next() {
		var i Slots
		if err := rows.Scan(
			&i.ID,
			&i.BayID,
			&i.StartTime,
			&i.EndTime,
			&i.Status,
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

const releaseBookedSlots = `-- name: ReleaseBookedSlots :execrows
UPDATE slots
SET status = 'available', updated_at = now()
WHERE id = ANY($1::bigint[])
  AND status = 'booked'
`

func (q *Queries) ReleaseBookedSlots(ctx context.Context, db DBTX, ids []int64) (int64, error) {
	result, err := db.Exec(ctx, releaseBookedSlots, ids)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateSlotStatus = `-- name: UpdateSlotStatus :execrows
UPDATE slots
SET status = $1, updated_at = now()
WHERE id = $2
  AND status = $3
`

type UpdateSlotStatusParams struct {
	ToStatus   string `json:"to_status"`
	ID         int64  `json:"id"`
	FromStatus string `json:"from_status"`
}

func (q *Queries) UpdateSlotStatus(ctx context.Context, db DBTX, arg UpdateSlotStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateSlotStatus, arg.ToStatus, arg.ID, arg.FromStatus)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
