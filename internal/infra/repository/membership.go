package repository

import (
	"context"
	"time"

	"bay-booking/internal/infra"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipWriteQueries interface {
	ConsumeMembershipHours(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeMembershipHoursParams) (int64, error)
	RestoreMembershipHours(ctx context.Context, db sqlc.DBTX, arg sqlc.RestoreMembershipHoursParams) error
}

type MembershipRepository struct {
	queries MembershipWriteQueries
	db      sqlc.DBTX
}

func NewMembershipRepository(queries MembershipWriteQueries, db sqlc.DBTX) *MembershipRepository {
	return &MembershipRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipRepository) ConsumeHours(ctx context.Context, userID uuid.UUID, hours int, at time.Time) (int64, error) {
	n, err := r.queries.ConsumeMembershipHours(ctx, r.db, sqlc.ConsumeMembershipHoursParams{
		Hours:     int32(hours),
		ChangedAt: pgconv.TimeToPgtype(at),
		UserID:    userID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to consume membership hours", err)
	}
	return n, nil
}

// RestoreHours never lifts the balance above the plan's included hours.
func (r *MembershipRepository) RestoreHours(ctx context.Context, userID uuid.UUID, hours int, at time.Time) error {
	err := r.queries.RestoreMembershipHours(ctx, r.db, sqlc.RestoreMembershipHoursParams{
		Hours:     int32(hours),
		ChangedAt: pgconv.TimeToPgtype(at),
		UserID:    userID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to restore membership hours", err)
	}
	return nil
}
