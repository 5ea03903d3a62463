package booking

import (
	"errors"
	"strings"
	"time"

	"bay-booking/internal/domain/slot"
	"bay-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName   = errors.New("guest name cannot be empty")
	ErrGuestNameTooLong = errors.New("guest name is too long (max 255 characters)")
	ErrMissingCustomer  = errors.New("booking needs a signed-in user or guest contact details")
)

const MaxGuestNameLength = 255

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

type GuestContact struct {
	name  string
	email user.Email
	phone string
}

func NewGuestContact(name, email, phone string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GuestContact{}, ErrEmptyGuestName
	}
	if len(name) > MaxGuestNameLength {
		return GuestContact{}, ErrGuestNameTooLong
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return GuestContact{}, err
	}
	return GuestContact{name: name, email: e, phone: strings.TrimSpace(phone)}, nil
}

func (g GuestContact) Name() string      { return g.name }
func (g GuestContact) Email() user.Email { return g.email }
func (g GuestContact) Phone() string     { return g.phone }

// Customer is who a booking is for: a signed-in user or a guest, never neither.
type Customer struct {
	userID *uuid.UUID
	guest  *GuestContact
}

func NewMemberCustomer(userID uuid.UUID) Customer {
	return Customer{userID: &userID}
}

func NewGuestCustomer(guest GuestContact) Customer {
	return Customer{guest: &guest}
}

func (c Customer) Validate() error {
	if c.userID == nil && c.guest == nil {
		return ErrMissingCustomer
	}
	return nil
}

func (c Customer) UserID() *uuid.UUID   { return c.userID }
func (c Customer) Guest() *GuestContact { return c.guest }
func (c Customer) IsGuest() bool        { return c.userID == nil }

// SlotRef is the booking's ordered view of a referenced slot.
type SlotRef struct {
	SlotID int64
	BayID  int64
	Start  time.Time
	End    time.Time
}

func RefOf(s *slot.Slot) SlotRef {
	return SlotRef{SlotID: s.ID(), BayID: s.BayID(), Start: s.Start(), End: s.End()}
}
