package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navNames(items []NavigationItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func TestVisibleNavigation_Owner(t *testing.T) {
	actor := NewActor(uuid.New(), RoleOwner)

	items := VisibleNavigation(actor)

	assert.Equal(t, []string{
		"Dashboard", "Orders", "New Order", "Customers", "Products",
		"Claims", "Shipping", "Retailers", "Admin", "Reports",
	}, navNames(items))
}

func TestVisibleNavigation_RetailerExcludesAdminAndRetailers(t *testing.T) {
	actor := NewActor(uuid.New(), RoleRetailer).WithRetailerScope(uuid.New())

	items := VisibleNavigation(actor)
	names := navNames(items)

	assert.NotContains(t, names, "Admin")
	assert.NotContains(t, names, "Retailers")
	assert.Contains(t, names, "Orders")
	assert.Contains(t, names, "Customers")
	assert.Contains(t, names, "Products")
}

func TestVisibleNavigation_DashboardAlwaysVisible(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleBackoffice, RoleRetailer, RoleLocationUser} {
		items := VisibleNavigation(NewActor(uuid.New(), role))
		require.NotEmpty(t, items, "role %s", role)
		assert.Equal(t, "Dashboard", items[0].Name, "role %s", role)
	}
}

func TestVisibleNavigation_PreservesMasterOrder(t *testing.T) {
	master := MasterNavigation()
	items := VisibleNavigation(NewActor(uuid.New(), RoleBackoffice))

	// The visible subset must be a subsequence of the master list.
	idx := 0
	for _, item := range items {
		found := false
		for ; idx < len(master); idx++ {
			if master[idx].Name == item.Name {
				found = true
				idx++
				break
			}
		}
		assert.True(t, found, "item %s out of master order", item.Name)
	}
}

func TestVisibleNavigation_Unauthenticated(t *testing.T) {
	assert.Empty(t, VisibleNavigation(Actor{}))
	assert.Empty(t, VisibleNavigation(Actor{ID: uuid.New(), Role: Role("ghost")}))
}

func TestLandingRoute(t *testing.T) {
	tests := []struct {
		role Role
		want Route
	}{
		{RoleOwner, RouteDashboard},
		{RoleBackoffice, RouteOrders},
		{RoleRetailer, RouteRetailerHome},
		{RoleLocationUser, RouteLocationHome},
		{Role("ghost"), RouteLogin},
		{Role(""), RouteLogin},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LandingRoute(tt.role))
		})
	}
}

func TestLandingRoute_DistinctPerRole(t *testing.T) {
	seen := map[Route]Role{}
	for _, role := range []Role{RoleOwner, RoleBackoffice, RoleRetailer, RoleLocationUser} {
		route := LandingRoute(role)
		if prev, dup := seen[route]; dup {
			t.Fatalf("roles %s and %s share landing route %s", prev, role, route)
		}
		seen[route] = role
	}
}
