package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shared"
	"github.com/ivrelife/nexus/internal/infrastructure/auth"
	"github.com/ivrelife/nexus/internal/infrastructure/config"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*identity.User
	byEmail map[string]*identity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*identity.User),
		byEmail: make(map[string]*identity.User),
	}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context, _ shared.Filter) ([]identity.User, error) {
	users := make([]identity.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) FindAllForRetailer(_ context.Context, retailerID uuid.UUID, _ shared.Filter) ([]identity.User, error) {
	var users []identity.User
	for _, u := range r.byID {
		if u.RetailerID != nil && *u.RetailerID == retailerID {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Save(_ context.Context, user *identity.User) error {
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	u, ok := r.byID[id]
	if !ok {
		return shared.ErrNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.byID)), nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters!!",
		Issuer:                 "nexus-test",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		MaxRefreshCount:        3,
	})
	return NewAuthService(repo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop()), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role identity.Role, retailerID, locationID *uuid.UUID) *identity.User {
	t.Helper()
	user, err := identity.NewUser(email, "Test User", "password123", role, retailerID, locationID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), user))
	return user
}

func TestAuthService_LoginResolvesSession(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "owner@ivrelife.com", identity.RoleOwner, nil, nil)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "owner@ivrelife.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)

	session := result.Session
	assert.Equal(t, identity.RouteDashboard, session.LandingRoute)
	assert.Len(t, session.Capabilities, len(identity.AllCapabilities))
	assert.Len(t, session.Navigation, len(identity.MasterNavigation()))
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "owner@ivrelife.com", identity.RoleOwner, nil, nil)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "owner@ivrelife.com",
		Password: "not-the-password",
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_LoginDeactivatedAccount(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := seedUser(t, repo, "gone@ivrelife.com", identity.RoleBackoffice, nil, nil)
	require.NoError(t, user.Deactivate())
	require.NoError(t, repo.Save(context.Background(), user))

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "gone@ivrelife.com",
		Password: "password123",
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
}

func TestAuthService_RetailerSessionScoping(t *testing.T) {
	svc, repo := newTestAuthService(t)
	retailerID := uuid.New()
	seedUser(t, repo, "retailer@ivrelife.com", identity.RoleRetailer, &retailerID, nil)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "retailer@ivrelife.com",
		Password: "password123",
	})
	require.NoError(t, err)

	session := result.Session
	assert.Equal(t, identity.RouteRetailerHome, session.LandingRoute)
	require.NotNil(t, session.User.RetailerID)
	assert.Equal(t, retailerID, *session.User.RetailerID)

	// retailer sees no admin entry
	for _, item := range session.Navigation {
		assert.NotEqual(t, identity.RouteAdmin, item.Route)
	}
}

func TestAuthService_RefreshRotatesTokens(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "back@ivrelife.com", identity.RoleBackoffice, nil, nil)

	login, err := svc.Login(context.Background(), LoginInput{
		Email:    "back@ivrelife.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
}

func TestAuthService_LogoutRevokesRefreshToken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "out@ivrelife.com", identity.RoleOwner, nil, nil)

	login, err := svc.Login(context.Background(), LoginInput{
		Email:    "out@ivrelife.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), LogoutInput{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	}))

	_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{
		RefreshToken: login.RefreshToken,
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_REVOKED", domainErr.Code)
}

func TestAuthService_SessionRequiresAuthenticatedActor(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Session(context.Background(), identity.Actor{})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}
