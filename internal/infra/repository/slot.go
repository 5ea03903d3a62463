package repository

import (
	"context"

	"bay-booking/internal/domain/slot"
	"bay-booking/internal/infra"
	sqlc "bay-booking/internal/infra/sqlc/generated"
)

type SlotWriteQueries interface {
	ClaimAvailableSlots(ctx context.Context, db sqlc.DBTX, ids []int64) (int64, error)
	ReleaseBookedSlots(ctx context.Context, db sqlc.DBTX, ids []int64) (int64, error)
	UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// ClaimAvailable flips available slots to booked in one statement. Slots that are not
// available are skipped, so a count below len(ids) means someone else holds one of them.
func (r *SlotRepository) ClaimAvailable(ctx context.Context, ids []int64) (int64, error) {
	n, err := r.queries.ClaimAvailableSlots(ctx, r.db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim slots", err)
	}
	return n, nil
}

func (r *SlotRepository) Release(ctx context.Context, ids []int64) (int64, error) {
	n, err := r.queries.ReleaseBookedSlots(ctx, r.db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release slots", err)
	}
	return n, nil
}

func (r *SlotRepository) SetStatus(ctx context.Context, id int64, from, to slot.Status) (int64, error) {
	n, err := r.queries.UpdateSlotStatus(ctx, r.db, sqlc.UpdateSlotStatusParams{
		ToStatus:   to.String(),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update slot status", err)
	}
	return n, nil
}
