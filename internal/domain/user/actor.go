package user

import "github.com/google/uuid"

// Actor is the authenticated caller as vouched for by the session provider.
// Users are not stored locally; only the id and role carried by the token are known.
type Actor struct {
	id   uuid.UUID
	role Role
}

func NewActor(id uuid.UUID, role Role) (Actor, error) {
	if id == uuid.Nil {
		return Actor{}, ErrInvalidActor
	}
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() uuid.UUID { return a.id }
func (a Actor) Role() Role    { return a.role }

func (a Actor) Has(c Capability) bool {
	return a.role.Capabilities()&c == c
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// CanManage reports whether the actor may act on a resource owned by ownerID.
// ownCap applies when the actor is the owner, anyCap otherwise.
func (a Actor) CanManage(ownerID *uuid.UUID, ownCap, anyCap Capability) bool {
	if a.Has(anyCap) {
		return true
	}
	return ownerID != nil && *ownerID == a.id && a.Has(ownCap)
}
