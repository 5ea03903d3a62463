package readstore

import (
	"context"

	"bay-booking/internal/infra"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"
	"bay-booking/internal/usecase/queries"
)

type BayViewQueries interface {
	ListBays(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bays, error)
	GetBayByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bays, error)
}

type BayReadStore struct {
	queries BayViewQueries
	db      sqlc.DBTX
}

func NewBayReadStore(queries BayViewQueries, db sqlc.DBTX) *BayReadStore {
	return &BayReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BayReadStore) List(ctx context.Context) ([]*queries.BayView, error) {
	rows, err := r.queries.ListBays(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bays", err)
	}

	result := make([]*queries.BayView, len(rows))
	for i, row := range rows {
		result[i] = toBayView(row)
	}
	return result, nil
}

func (r *BayReadStore) FindByID(ctx context.Context, id int64) (*queries.BayView, error) {
	row, err := r.queries.GetBayByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bay not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find bay by ID", err)
	}
	return toBayView(row), nil
}

func toBayView(row sqlc.Bays) *queries.BayView {
	return &queries.BayView{
		ID:        row.ID,
		Name:      row.Name,
		Capacity:  int(row.Capacity),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
