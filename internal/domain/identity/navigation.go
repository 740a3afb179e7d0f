package identity

// Route names the fixed route table the resolver addresses. Adding a route
// here requires extending the master navigation list and the role capability
// mapping in lockstep.
type Route string

const (
	RouteLogin        Route = "/login"
	RouteDashboard    Route = "/dashboard"
	RouteOrders       Route = "/orders"
	RouteNewOrder     Route = "/orders/new"
	RouteCustomers    Route = "/customers"
	RouteProducts     Route = "/products"
	RouteClaims       Route = "/claims"
	RouteShipping     Route = "/shipping"
	RouteRetailers    Route = "/retailers"
	RouteAdmin        Route = "/admin"
	RouteReports      Route = "/reports"
	RouteSettings     Route = "/settings"
	RouteRetailerHome Route = "/retailer"
	RouteLocationHome Route = "/location"
)

// NavigationItem is one entry of the dashboard's navigation menu
type NavigationItem struct {
	Name       string     `json:"name"`
	Route      Route      `json:"route"`
	Capability Capability `json:"-"`
}

// masterNavigation is the full fixed navigation list in display order.
// Dashboard is visible to every authenticated actor regardless of role.
var masterNavigation = []NavigationItem{
	{Name: "Dashboard", Route: RouteDashboard, Capability: CapSeeDashboard},
	{Name: "Orders", Route: RouteOrders, Capability: CapSeeOrders},
	{Name: "New Order", Route: RouteNewOrder, Capability: CapCreateOrders},
	{Name: "Customers", Route: RouteCustomers, Capability: CapSeeCustomers},
	{Name: "Products", Route: RouteProducts, Capability: CapSeeProducts},
	{Name: "Claims", Route: RouteClaims, Capability: CapSeeClaims},
	{Name: "Shipping", Route: RouteShipping, Capability: CapSeeShipping},
	{Name: "Retailers", Route: RouteRetailers, Capability: CapSeeRetailers},
	{Name: "Admin", Route: RouteAdmin, Capability: CapSeeAdmin},
	{Name: "Reports", Route: RouteReports, Capability: CapSeeReports},
}

// MasterNavigation returns a copy of the full fixed navigation list
func MasterNavigation() []NavigationItem {
	items := make([]NavigationItem, len(masterNavigation))
	copy(items, masterNavigation)
	return items
}

// VisibleNavigation returns the navigation items the actor may see, in the
// master list's fixed order. An unauthenticated actor sees nothing.
func VisibleNavigation(actor Actor) []NavigationItem {
	if !actor.IsAuthenticated() {
		return []NavigationItem{}
	}

	caps := CapabilitiesForActor(actor)
	visible := make([]NavigationItem, 0, len(masterNavigation))
	for _, item := range masterNavigation {
		if item.Route == RouteDashboard || caps.Has(item.Capability) {
			visible = append(visible, item)
		}
	}
	return visible
}

// LandingRoute maps a role to its default post-login route. The login flow
// and route guards both use it, so unknown roles land back on login rather
// than on a half-authorized page.
func LandingRoute(role Role) Route {
	switch role {
	case RoleOwner:
		return RouteDashboard
	case RoleBackoffice:
		return RouteOrders
	case RoleRetailer:
		return RouteRetailerHome
	case RoleLocationUser:
		return RouteLocationHome
	}
	return RouteLogin
}
