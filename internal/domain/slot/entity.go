package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("slot end must be after start")
	ErrInvalidStatus    = errors.New("invalid slot status")
	ErrSlotBooked       = errors.New("slot is booked")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusUnavailable Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusUnavailable:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Slot is a one-hour unit of bay time. Slots are referenced by bookings, never owned.
type Slot struct {
	id        int64
	bayID     int64
	start     time.Time
	end       time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(bayID int64, start, end time.Time) (*Slot, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}
	return &Slot{
		bayID:  bayID,
		start:  start,
		end:    end,
		status: StatusAvailable,
	}, nil
}

func ReconstructSlot(
	id, bayID int64,
	start, end time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:        id,
		bayID:     bayID,
		start:     start,
		end:       end,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) HasStarted(now time.Time) bool {
	return !now.Before(s.start)
}

// Follows reports whether s begins exactly where prev ends on the same bay.
func (s *Slot) Follows(prev *Slot) bool {
	return prev != nil && s.bayID == prev.bayID && s.start.Equal(prev.end)
}

// CanSetStatus covers admin block-out: only available and unavailable are interchangeable.
func (s *Slot) CanSetStatus(to Status) error {
	if to != StatusAvailable && to != StatusUnavailable {
		return ErrInvalidStatus
	}
	if s.status == StatusBooked {
		return ErrSlotBooked
	}
	return nil
}

func (s *Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

func (s *Slot) ID() int64            { return s.id }
func (s *Slot) BayID() int64         { return s.bayID }
func (s *Slot) Start() time.Time     { return s.start }
func (s *Slot) End() time.Time       { return s.end }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
