package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func TestNewUser(t *testing.T) {
	retailerID := uuid.New()
	locationID := uuid.New()

	tests := []struct {
		name        string
		email       string
		role        Role
		retailerID  *uuid.UUID
		locationID  *uuid.UUID
		wantErr     bool
		errContains string
	}{
		{
			name:  "owner without scope",
			email: "owner@ivrelife.com",
			role:  RoleOwner,
		},
		{
			name:       "retailer with retailer scope",
			email:      "store@ivrelife.com",
			role:       RoleRetailer,
			retailerID: ptr(retailerID),
		},
		{
			name:       "location user with location scope",
			email:      "desk@ivrelife.com",
			role:       RoleLocationUser,
			retailerID: ptr(retailerID),
			locationID: ptr(locationID),
		},
		{
			name:        "owner with retailer scope rejected",
			email:       "owner2@ivrelife.com",
			role:        RoleOwner,
			retailerID:  ptr(retailerID),
			wantErr:     true,
			errContains: "scope-unbounded",
		},
		{
			name:        "retailer without retailer scope rejected",
			email:       "store2@ivrelife.com",
			role:        RoleRetailer,
			wantErr:     true,
			errContains: "must be bound to a retailer",
		},
		{
			name:        "location user without location scope rejected",
			email:       "desk2@ivrelife.com",
			role:        RoleLocationUser,
			retailerID:  ptr(retailerID),
			wantErr:     true,
			errContains: "must be bound to a location",
		},
		{
			name:        "invalid email rejected",
			email:       "not-an-email",
			role:        RoleOwner,
			wantErr:     true,
			errContains: "not valid",
		},
		{
			name:        "unknown role rejected",
			email:       "ghost@ivrelife.com",
			role:        Role("ghost"),
			wantErr:     true,
			errContains: "role set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.email, "Test User", "s3cret-pass", tt.role, tt.retailerID, tt.locationID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.True(t, user.IsActive)
			assert.Equal(t, tt.role, user.Role)
			assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		})
	}
}

func TestUser_PasswordLifecycle(t *testing.T) {
	user, err := NewUser("owner@ivrelife.com", "Owner", "initial-pass", RoleOwner, nil, nil)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("initial-pass"))
	assert.False(t, user.CheckPassword("wrong-pass"))

	require.NoError(t, user.ChangePassword("rotated-pass"))
	assert.True(t, user.CheckPassword("rotated-pass"))
	assert.False(t, user.CheckPassword("initial-pass"))

	err = user.ChangePassword("short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestUser_AssignRole(t *testing.T) {
	user, err := NewUser("staff@ivrelife.com", "Staff", "s3cret-pass", RoleBackoffice, nil, nil)
	require.NoError(t, err)

	retailerID := uuid.New()
	require.NoError(t, user.AssignRole(RoleRetailer, &retailerID, nil))
	assert.Equal(t, RoleRetailer, user.Role)
	require.NotNil(t, user.RetailerID)
	assert.Equal(t, retailerID, *user.RetailerID)

	err = user.AssignRole(RoleLocationUser, &retailerID, nil)
	require.Error(t, err)
	assert.Equal(t, RoleRetailer, user.Role, "failed assignment must not change role")
}

func TestUser_ActivationLifecycle(t *testing.T) {
	user, err := NewUser("staff@ivrelife.com", "Staff", "s3cret-pass", RoleBackoffice, nil, nil)
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.False(t, user.IsActive)
	require.Error(t, user.Deactivate())

	require.NoError(t, user.Activate())
	assert.True(t, user.IsActive)
	require.Error(t, user.Activate())
}

func TestUser_Actor(t *testing.T) {
	retailerID := uuid.New()
	locationID := uuid.New()
	user, err := NewUser("desk@ivrelife.com", "Desk", "s3cret-pass", RoleLocationUser, &retailerID, &locationID)
	require.NoError(t, err)

	actor := user.Actor()
	assert.Equal(t, user.ID, actor.ID)
	assert.Equal(t, RoleLocationUser, actor.Role)
	assert.True(t, actor.CanAccessLocation(locationID))
	assert.False(t, actor.CanAccessRetailer(retailerID))
}

func TestUser_RecordLogin(t *testing.T) {
	user, err := NewUser("owner@ivrelife.com", "Owner", "s3cret-pass", RoleOwner, nil, nil)
	require.NoError(t, err)

	at := time.Now()
	user.RecordLogin(at)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, at, *user.LastLoginAt)
}
