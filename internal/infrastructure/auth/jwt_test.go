package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-0123456789abcdef0123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "nexus-test",
		MaxRefreshCount:        2,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	retailerID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:     uuid.New(),
		Email:      "dealer@acme.com",
		Role:       identity.RoleRetailer,
		RetailerID: &retailerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "retailer", claims.Role)
	assert.Equal(t, retailerID.String(), claims.RetailerID)
	assert.Equal(t, "dealer@acme.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	// access token must not validate as refresh token and vice versa
	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	locationID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:     uuid.New(),
		Role:       identity.RoleLocationUser,
		LocationID: &locationID,
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokenPair(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "location_user", claims.Role)
	assert.Equal(t, locationID.String(), claims.LocationID)

	// refresh count is carried forward and capped
	second, err := svc.RefreshTokenPair(refreshed.RefreshToken)
	require.NoError(t, err)
	_, err = svc.RefreshTokenPair(second.RefreshToken)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "another-secret-entirely-0123456789",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "nexus-test",
		MaxRefreshCount:        2,
	})

	pair, err := other.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Role:   identity.RoleOwner,
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_Actor(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()
	retailerID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:     userID,
		Role:       identity.RoleRetailer,
		RetailerID: &retailerID,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	actor := claims.Actor()
	assert.True(t, actor.IsAuthenticated())
	assert.Equal(t, userID, actor.ID)
	assert.True(t, actor.CanAccessRetailer(retailerID))
	assert.False(t, actor.CanAccessRetailer(uuid.New()))
}

func TestClaims_Actor_UnknownRoleIsUnauthenticated(t *testing.T) {
	claims := &Claims{UserID: uuid.New().String(), Role: "superadmin"}
	actor := claims.Actor()
	assert.False(t, actor.IsAuthenticated())
}
