package identity

import (
	"github.com/google/uuid"
)

// Role represents the caller's role in the system
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the resolved identity of the caller for a single request.
// It is built from an access token by the auth middleware and passed
// explicitly into every permission check; there is no ambient session.
type Actor struct {
	UserID   uuid.UUID // uuid.Nil for guests
	Username string
	Role     Role
}

// Guest returns the synthetic actor used for anonymous sessions.
// Guests are never persisted and carry no user ID.
func Guest() Actor {
	return Actor{Username: "Guest", Role: RoleGuest}
}

// IsGuest returns true for anonymous actors
func (a Actor) IsGuest() bool {
	return a.Role == RoleGuest || a.UserID == uuid.Nil
}

// IsUser returns true for authenticated community members
func (a Actor) IsUser() bool {
	return a.Role == RoleUser && a.UserID != uuid.Nil
}

// IsAdmin returns true for administrators
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin && a.UserID != uuid.Nil
}

// Owns reports whether the actor owns the record referenced by ownerID.
// Guest-submitted records have no owner, so guests own nothing.
func (a Actor) Owns(ownerID uuid.NullUUID) bool {
	return !a.IsGuest() && ownerID.Valid && ownerID.UUID == a.UserID
}

// NullOwner converts an actor into the nullable owner reference stored
// on records it creates: NULL for guests, the user ID otherwise.
func (a Actor) NullOwner() uuid.NullUUID {
	if a.IsGuest() {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: a.UserID, Valid: true}
}
