package readstore

import (
	"context"
	"time"

	"bay-booking/internal/domain/slot"
	"bay-booking/internal/infra"
	"bay-booking/internal/infra/repository/converter"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"
)

type SlotReadQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Slots, error)
	GetSlotsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Slots, error)
	GetSlotsFrom(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotsFromParams) ([]sqlc.Slots, error)
	GetSlotsByBayBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotsByBayBetweenParams) ([]sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) ListByBayBetween(ctx context.Context, bayID int64, from, to time.Time) ([]*slot.Slot, error) {
	rows, err := r.queries.GetSlotsByBayBetween(ctx, r.db, sqlc.GetSlotsByBayBetweenParams{
		BayID:    bayID,
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bay slots", err)
	}
	return toSlots(rows)
}

func (r *SlotReadStore) FindByID(ctx context.Context, id int64) (*slot.Slot, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	s, err := converter.SlotToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt slot row", err)
	}
	return s, nil
}

func (r *SlotReadStore) FindByIDs(ctx context.Context, ids []int64) ([]*slot.Slot, error) {
	rows, err := r.queries.GetSlotsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots by IDs", err)
	}
	return toSlots(rows)
}

func (r *SlotReadStore) FindFrom(ctx context.Context, bayID int64, from time.Time, limit int) ([]*slot.Slot, error) {
	rows, err := r.queries.GetSlotsFrom(ctx, r.db, sqlc.GetSlotsFromParams{
		BayID:     bayID,
		StartTime: pgconv.TimeToPgtype(from),
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find following slots", err)
	}
	return toSlots(rows)
}

func toSlots(rows []sqlc.Slots) ([]*slot.Slot, error) {
	slots, err := converter.SlotsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt slot row", err)
	}
	return slots, nil
}
