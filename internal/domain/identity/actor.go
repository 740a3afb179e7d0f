package identity

import (
	"strings"

	"github.com/google/uuid"
)

// Role represents an actor's role in the access control model
type Role string

const (
	RoleOwner        Role = "owner"
	RoleBackoffice   Role = "backoffice"
	RoleRetailer     Role = "retailer"
	RoleLocationUser Role = "location_user"
)

// IsValid checks if the role is part of the fixed role set
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleBackoffice, RoleRetailer, RoleLocationUser:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a role string into a Role.
// Returns false for anything outside the fixed role set.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// Actor is the authenticated identity making a request: who they are,
// what role they hold, and which retailer/location (if any) bounds them.
// Owner and backoffice are scope-unbounded; retailer is bounded to one
// retailer; location_user is bounded to one location.
type Actor struct {
	ID         uuid.UUID
	Role       Role
	RetailerID *uuid.UUID
	LocationID *uuid.UUID
}

// NewActor creates an actor for the given identity and role
func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

// WithRetailerScope returns a copy of the actor bounded to a retailer
func (a Actor) WithRetailerScope(retailerID uuid.UUID) Actor {
	a.RetailerID = &retailerID
	return a
}

// WithLocationScope returns a copy of the actor bounded to a location
func (a Actor) WithLocationScope(locationID uuid.UUID) Actor {
	a.LocationID = &locationID
	return a
}

// IsAuthenticated reports whether the actor carries a usable identity.
// A zero ID or a role outside the fixed set is treated as unauthenticated,
// never as an error the caller has to recover from.
func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil && a.Role.IsValid()
}

// CanAccessRetailer decides record-level retailer access.
// Location users are never granted retailer-wide access, even for the
// retailer that owns their location.
func (a Actor) CanAccessRetailer(retailerID uuid.UUID) bool {
	switch a.Role {
	case RoleOwner, RoleBackoffice:
		return true
	case RoleRetailer:
		return a.RetailerID != nil && *a.RetailerID == retailerID
	case RoleLocationUser:
		return false
	}
	return false
}

// CanAccessLocation decides record-level location access.
// Retailer role holders are trusted for every location under their own
// retailer without a per-location membership check; this coarse policy is
// intentional and is revisited in DESIGN.md.
func (a Actor) CanAccessLocation(locationID uuid.UUID) bool {
	switch a.Role {
	case RoleOwner, RoleBackoffice:
		return true
	case RoleRetailer:
		return a.RetailerID != nil
	case RoleLocationUser:
		return a.LocationID != nil && *a.LocationID == locationID
	}
	return false
}
