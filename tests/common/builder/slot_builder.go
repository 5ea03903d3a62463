//go:build unit || e2e

package builder

import (
	"time"

	"bay-booking/internal/domain/slot"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/internal/pkg/pgconv"
)

type SlotBuilder struct {
	ID     int64
	BayID  int64
	Start  time.Time
	Length time.Duration
	Status slot.Status
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:     1,
		BayID:  1,
		Start:  time.Now().Add(48 * time.Hour).Truncate(time.Hour),
		Length: time.Hour,
		Status: slot.StatusAvailable,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) BuildDomain() *slot.Slot {
	now := time.Now()
	return slot.ReconstructSlot(s.ID, s.BayID, s.Start, s.Start.Add(s.Length), s.Status, now, now)
}

func (s *SlotBuilder) BuildInfra() sqlc.Slots {
	now := pgconv.TimeToPgtype(time.Now())
	return sqlc.Slots{
		ID:        s.ID,
		BayID:     s.BayID,
		StartTime: pgconv.TimeToPgtype(s.Start),
		EndTime:   pgconv.TimeToPgtype(s.Start.Add(s.Length)),
		Status:    s.Status.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BuildRun returns n back-to-back slots with consecutive ids starting from the builder's values.
func (s *SlotBuilder) BuildRun(n int) []*slot.Slot {
	out := make([]*slot.Slot, n)
	for i := range n {
		b := *s
		b.ID = s.ID + int64(i)
		b.Start = s.Start.Add(time.Duration(i) * s.Length)
		out[i] = b.BuildDomain()
	}
	return out
}

func (s *SlotBuilder) WithID(id int64) *SlotBuilder {
	s.ID = id
	return s
}

func (s *SlotBuilder) WithBayID(bayID int64) *SlotBuilder {
	s.BayID = bayID
	return s
}

func (s *SlotBuilder) WithStart(start time.Time) *SlotBuilder {
	s.Start = start
	return s
}

func (s *SlotBuilder) StartingIn(d time.Duration) *SlotBuilder {
	s.Start = time.Now().Add(d)
	return s
}

func (s *SlotBuilder) WithStatus(status slot.Status) *SlotBuilder {
	s.Status = status
	return s
}

func (s *SlotBuilder) AsBooked() *SlotBuilder {
	s.Status = slot.StatusBooked
	return s
}
