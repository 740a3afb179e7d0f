package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/identity"
)

// LoginInput contains credentials for authentication
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned after a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Session               SessionInfo
}

// SessionInfo is everything the dashboard needs to render for an actor:
// who they are, what they may do, what they may see, and where they land.
type SessionInfo struct {
	User         UserInfo
	Capabilities []identity.Capability
	Navigation   []identity.NavigationItem
	LandingRoute identity.Route
}

// UserInfo is the session-facing view of a user account
type UserInfo struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Role       identity.Role
	RetailerID *uuid.UUID
	LocationID *uuid.UUID
}

// RefreshTokenInput contains the refresh token to rotate
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult is returned after a successful token rotation
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the tokens to revoke
type LogoutInput struct {
	AccessToken  string
	RefreshToken string
}

// CreateUserInput contains input for creating a user account
type CreateUserInput struct {
	Email      string
	Name       string
	Password   string
	Role       identity.Role
	RetailerID *uuid.UUID
	LocationID *uuid.UUID
}

// AssignRoleInput contains input for changing a user's role and scope
type AssignRoleInput struct {
	UserID     uuid.UUID
	Role       identity.Role
	RetailerID *uuid.UUID
	LocationID *uuid.UUID
}

// ChangePasswordInput contains input for a password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

func userInfoOf(u *identity.User) UserInfo {
	return UserInfo{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		RetailerID: u.RetailerID,
		LocationID: u.LocationID,
	}
}

// sessionOf derives the full session view for an actor. It is pure: the
// capability set, navigation and landing route all come from the role alone.
func sessionOf(user *identity.User) SessionInfo {
	actor := user.Actor()
	return SessionInfo{
		User:         userInfoOf(user),
		Capabilities: identity.CapabilitiesForActor(actor).Granted(),
		Navigation:   identity.VisibleNavigation(actor),
		LandingRoute: identity.LandingRoute(actor.Role),
	}
}
