package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

func TestGormUserRepository_SaveAndFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("owner@ivrelife.com", "Owner", "password123", identity.RoleOwner, nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByEmail(ctx, "OWNER@ivrelife.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, identity.RoleOwner, found.Role)
	assert.True(t, found.CheckPassword("password123"))

	_, err = repo.FindByEmail(ctx, "missing@ivrelife.com")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_FindAllForRetailer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	retailerA := uuid.New()
	retailerB := uuid.New()

	u1, err := identity.NewUser("a1@ivrelife.com", "A1", "password123", identity.RoleRetailer, &retailerA, nil)
	require.NoError(t, err)
	u2, err := identity.NewUser("b1@ivrelife.com", "B1", "password123", identity.RoleRetailer, &retailerB, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, u1))
	require.NoError(t, repo.Save(ctx, u2))

	scoped, err := repo.FindAllForRetailer(ctx, retailerA, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "a1@ivrelife.com", scoped[0].Email)
}

func TestGormUserRepository_RoleFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	retailerID := uuid.New()
	locationID := uuid.New()

	owner, err := identity.NewUser("own@ivrelife.com", "Own", "password123", identity.RoleOwner, nil, nil)
	require.NoError(t, err)
	locUser, err := identity.NewUser("loc@ivrelife.com", "Loc", "password123", identity.RoleLocationUser, &retailerID, &locationID)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, owner))
	require.NoError(t, repo.Save(ctx, locUser))

	filter := shared.DefaultFilter()
	filter.Filters["role"] = identity.RoleLocationUser
	users, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, identity.RoleLocationUser, users[0].Role)
}
