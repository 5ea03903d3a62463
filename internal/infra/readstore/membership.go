package readstore

import (
	"context"

	"bay-booking/internal/domain/membership"
	"bay-booking/internal/infra"
	"bay-booking/internal/infra/repository/converter"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipReadQueries interface {
	GetMembershipByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Memberships, error)
}

type MembershipReadStore struct {
	queries MembershipReadQueries
	db      sqlc.DBTX
}

func NewMembershipReadStore(queries MembershipReadQueries, db sqlc.DBTX) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*membership.Membership, error) {
	row, err := r.queries.GetMembershipByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("membership not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find membership", err)
	}
	return converter.MembershipToDomain(row), nil
}
