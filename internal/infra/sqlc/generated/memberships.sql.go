// Written to match sqlc v1.29.0 output for memberships.sql (see sqlc.yaml).
// Keep in step with the query file; query_sync_test.go checks the names.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const consumeMembershipHours = `-- name: ConsumeMembershipHours :execrows
UPDATE memberships
SET hours_remaining = hours_remaining - $1,
    updated_at      = $2
WHERE user_id = $3
  AND status = 'active'
  AND period_end > $2
  AND hours_remaining >= $1
`

type ConsumeMembershipHoursParams struct {
	Hours     int32              `json:"hours"`
	ChangedAt pgtype.Timestamptz `json:"changed_at"`
	UserID    uuid.UUID          `json:"user_id"`
}

func (q *Queries) ConsumeMembershipHours(ctx context.Context, db DBTX, arg ConsumeMembershipHoursParams) (int64, error) {
	result, err := db.Exec(ctx, consumeMembershipHours, arg.Hours, arg.ChangedAt, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getMembershipByUserID = `-- name: GetMembershipByUserID :one
SELECT user_id, plan, included_hours, hours_remaining, period_end, status, created_at, updated_at
FROM memberships
WHERE user_id = $1
`

func (q *Queries) GetMembershipByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (Memberships, error) {
	row := db.QueryRow(ctx, getMembershipByUserID, userID)
	var i Memberships
	err := row.Scan(
		&i.UserID,
		&i.Plan,
		&i.IncludedHours,
		&i.HoursRemaining,
		&i.PeriodEnd,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const restoreMembershipHours = `-- name: RestoreMembershipHours :exec
UPDATE memberships
SET hours_remaining = LEAST(hours_remaining + $1, included_hours),
    updated_at      = $2
WHERE user_id = $3
`

type RestoreMembershipHoursParams struct {
	Hours     int32              `json:"hours"`
	ChangedAt pgtype.Timestamptz `json:"changed_at"`
	UserID    uuid.UUID          `json:"user_id"`
}

func (q *Queries) RestoreMembershipHours(ctx context.Context, db DBTX, arg RestoreMembershipHoursParams) error {
	_, err := db.Exec(ctx, restoreMembershipHours, arg.Hours, arg.ChangedAt, arg.UserID)
	return err
}
