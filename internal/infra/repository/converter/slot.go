package converter

import (
	"bay-booking/internal/domain/slot"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/pkg/pgconv"
)

func SlotToDomain(row sqlc.Slots) (*slot.Slot, error) {
	status, err := slot.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "slot %d", row.ID)
	}
	return slot.ReconstructSlot(
		row.ID,
		row.BayID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SlotsToDomain(rows []sqlc.Slots) ([]*slot.Slot, error) {
	slots := make([]*slot.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := SlotToDomain(row)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}
