package membership

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientHours = errors.New("membership does not have enough hours left")
	ErrInvalidHours      = errors.New("hours must be positive")
	ErrInvalidStatus     = errors.New("invalid membership status")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPastDue   Status = "past_due"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPastDue, StatusCancelled:
		return true
	default:
		return false
	}
}

// Membership grants a number of free bay hours per billing period.
type Membership struct {
	userID         uuid.UUID
	plan           string
	includedHours  int
	hoursRemaining int
	periodEnd      time.Time
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructMembership(
	userID uuid.UUID,
	plan string,
	includedHours, hoursRemaining int,
	periodEnd time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Membership {
	return &Membership{
		userID:         userID,
		plan:           plan,
		includedHours:  includedHours,
		hoursRemaining: hoursRemaining,
		periodEnd:      periodEnd,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (m *Membership) IsValidAt(t time.Time) bool {
	return m.status == StatusActive && t.Before(m.periodEnd)
}

// AvailableHoursAt is what a booking made at t may draw on.
func (m *Membership) AvailableHoursAt(t time.Time) int {
	if !m.IsValidAt(t) {
		return 0
	}
	return max(m.hoursRemaining, 0)
}

func (m *Membership) Consume(hours int, t time.Time) error {
	if hours <= 0 {
		return ErrInvalidHours
	}
	if m.AvailableHoursAt(t) < hours {
		return ErrInsufficientHours
	}
	m.hoursRemaining -= hours
	m.updatedAt = t
	return nil
}

func (m *Membership) Restore(hours int, t time.Time) {
	if hours <= 0 {
		return
	}
	m.hoursRemaining = min(m.hoursRemaining+hours, m.includedHours)
	m.updatedAt = t
}

func (m *Membership) UserID() uuid.UUID    { return m.userID }
func (m *Membership) Plan() string         { return m.plan }
func (m *Membership) IncludedHours() int   { return m.includedHours }
func (m *Membership) HoursRemaining() int  { return m.hoursRemaining }
func (m *Membership) PeriodEnd() time.Time { return m.periodEnd }
func (m *Membership) Status() Status       { return m.status }
func (m *Membership) CreatedAt() time.Time { return m.createdAt }
func (m *Membership) UpdatedAt() time.Time { return m.updatedAt }
