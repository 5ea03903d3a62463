// Written to match sqlc v1.29.0 output for bays.sql (see sqlc.yaml).
// Keep in step with the query file; query_sync_test.go checks the names.

package sqlc

import (
	"context"
)

const getBayByID = `-- name: GetBayByID :one
SELECT id, name, capacity, created_at, updated_at
FROM bays
WHERE id = $1
`

func (q *Queries) GetBayByID(ctx context.Context, db DBTX, id int64) (Bays, error) {
	row := db.QueryRow(ctx, getBayByID, id)
	var i Bays
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Capacity,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBays = `-- name: ListBays :many
SELECT id, name, capacity, created_at, updated_at
FROM bays
ORDER BY id
`

func (q *Queries) ListBays(ctx context.Context, db DBTX) ([]Bays, error) {
	rows, err := db.Query(ctx, listBays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bays{}
	for rows.Next() {
		var i Bays
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Capacity,
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
