package converter

import (
	"bay-booking/internal/domain/membership"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"
)

func MembershipToDomain(row sqlc.Memberships) *membership.Membership {
	return membership.ReconstructMembership(
		row.UserID,
		row.Plan,
		int(row.IncludedHours),
		int(row.HoursRemaining),
		pgconv.TimeFromPgtype(row.PeriodEnd),
		membership.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
