package identity

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// User is an account that can authenticate against the nexus.
// It is the aggregate root for account management; the session-facing view
// of a user is the Actor value derived from it.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	RetailerID   *uuid.UUID
	LocationID   *uuid.UUID
	IsActive     bool
	LastLoginAt  *time.Time
}

// NewUser creates a new user with the given role and scope.
// Scope invariants are enforced here: retailer users carry exactly one
// retailer, location users exactly one location, owner/backoffice neither.
func NewUser(email, name, password string, role Role, retailerID, locationID *uuid.UUID) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.ErrUnknownRole
	}
	if err := validateScope(role, retailerID, locationID); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		PasswordHash:      hash,
		Role:              role,
		RetailerID:        retailerID,
		LocationID:        locationID,
		IsActive:          true,
	}, nil
}

func validateScope(role Role, retailerID, locationID *uuid.UUID) error {
	switch role {
	case RoleOwner, RoleBackoffice:
		if retailerID != nil || locationID != nil {
			return shared.NewDomainError("INVALID_SCOPE", "Owner and backoffice users are scope-unbounded")
		}
	case RoleRetailer:
		if retailerID == nil {
			return shared.NewDomainError("INVALID_SCOPE", "Retailer users must be bound to a retailer")
		}
		if locationID != nil {
			return shared.NewDomainError("INVALID_SCOPE", "Retailer users cannot carry a location scope")
		}
	case RoleLocationUser:
		if locationID == nil {
			return shared.NewDomainError("INVALID_SCOPE", "Location users must be bound to a location")
		}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// AssignRole changes the user's role and scope together, keeping the scope
// invariants intact.
func (u *User) AssignRole(role Role, retailerID, locationID *uuid.UUID) error {
	if !role.IsValid() {
		return shared.ErrUnknownRole
	}
	if err := validateScope(role, retailerID, locationID); err != nil {
		return err
	}
	u.Role = role
	u.RetailerID = retailerID
	u.LocationID = locationID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if !u.IsActive {
		return shared.NewDomainError("ALREADY_DISABLED", "User is already deactivated")
	}
	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Activate re-enables the account
func (u *User) Activate() error {
	if u.IsActive {
		return shared.NewDomainError("ALREADY_ENABLED", "User is already active")
	}
	u.IsActive = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RecordLogin stamps a successful authentication
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = at
}

// Actor derives the session actor for this user
func (u *User) Actor() Actor {
	return Actor{
		ID:         u.ID,
		Role:       u.Role,
		RetailerID: u.RetailerID,
		LocationID: u.LocationID,
	}
}
