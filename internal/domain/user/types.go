package user

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Capability is a single permission bit. Handlers and use cases check capabilities, not roles.
type Capability uint16

const (
	CapBookForSelf Capability = 1 << iota
	CapViewOwnBookings
	CapCancelOwn
	CapViewAnyBooking
	CapCancelAny
	CapExtendBooking
	CapBlockSlots
)

var roleCapabilities = map[Role]Capability{
	RoleUser: CapBookForSelf | CapViewOwnBookings | CapCancelOwn,
	RoleAdmin: CapBookForSelf | CapViewOwnBookings | CapCancelOwn |
		CapViewAnyBooking | CapCancelAny | CapExtendBooking | CapBlockSlots,
}

func (r Role) Capabilities() Capability {
	return roleCapabilities[r]
}
