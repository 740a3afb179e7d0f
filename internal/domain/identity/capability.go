package identity

import "github.com/ivrelife/nexus/internal/domain/shared"

// Capability names a single thing an actor may see or do.
type Capability string

const (
	CapSeeDashboard   Capability = "see_dashboard"
	CapSeeOrders      Capability = "see_orders"
	CapCreateOrders   Capability = "create_orders"
	CapSeeCustomers   Capability = "see_customers"
	CapEditCustomers  Capability = "edit_customers"
	CapSeeProducts    Capability = "see_products"
	CapEditProducts   Capability = "edit_products"
	CapSeeClaims      Capability = "see_claims"
	CapResolveClaims  Capability = "resolve_claims"
	CapSeeShipping    Capability = "see_shipping"
	CapSeeRetailers   Capability = "see_retailers"
	CapEditRetailers  Capability = "edit_retailers"
	CapSeeAdmin       Capability = "see_admin"
	CapSeeReports     Capability = "see_reports"
	CapManageUsers    Capability = "manage_users"
	CapManageSettings Capability = "manage_settings"
)

// AllCapabilities is the fixed capability universe, in declaration order.
var AllCapabilities = []Capability{
	CapSeeDashboard,
	CapSeeOrders,
	CapCreateOrders,
	CapSeeCustomers,
	CapEditCustomers,
	CapSeeProducts,
	CapEditProducts,
	CapSeeClaims,
	CapResolveClaims,
	CapSeeShipping,
	CapSeeRetailers,
	CapEditRetailers,
	CapSeeAdmin,
	CapSeeReports,
	CapManageUsers,
	CapManageSettings,
}

// CapabilitySet maps every capability to whether the role holds it.
// It is derived purely from the role and recomputed on every decision;
// it is never persisted.
type CapabilitySet map[Capability]bool

// Has reports whether the set grants the capability
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// Granted returns the granted capabilities in the fixed declaration order
func (s CapabilitySet) Granted() []Capability {
	granted := make([]Capability, 0, len(s))
	for _, c := range AllCapabilities {
		if s[c] {
			granted = append(granted, c)
		}
	}
	return granted
}

// IsSupersetOf reports whether every capability granted by other is also
// granted by s. Used to verify privilege monotonicity.
func (s CapabilitySet) IsSupersetOf(other CapabilitySet) bool {
	for _, c := range AllCapabilities {
		if other[c] && !s[c] {
			return false
		}
	}
	return true
}

func emptyCapabilitySet() CapabilitySet {
	set := make(CapabilitySet, len(AllCapabilities))
	for _, c := range AllCapabilities {
		set[c] = false
	}
	return set
}

func capabilitySetOf(granted ...Capability) CapabilitySet {
	set := emptyCapabilitySet()
	for _, c := range granted {
		set[c] = true
	}
	return set
}

// CapabilitiesFor returns the fully-populated capability set for a role.
// Every capability key is present in the returned set.
//
// An unknown role fails closed: the all-false set is returned together with
// ErrUnknownRole so callers can tell a role-enumeration mismatch apart from
// an ordinary denial.
func CapabilitiesFor(role Role) (CapabilitySet, error) {
	switch role {
	case RoleOwner:
		return capabilitySetOf(AllCapabilities...), nil
	case RoleBackoffice:
		return capabilitySetOf(
			CapSeeDashboard,
			CapSeeOrders,
			CapCreateOrders,
			CapSeeCustomers,
			CapEditCustomers,
			CapSeeProducts,
			CapEditProducts,
			CapSeeClaims,
			CapResolveClaims,
			CapSeeShipping,
			CapSeeRetailers,
			CapSeeReports,
		), nil
	case RoleRetailer:
		return capabilitySetOf(
			CapSeeDashboard,
			CapSeeOrders,
			CapCreateOrders,
			CapSeeCustomers,
			CapEditCustomers,
			CapSeeProducts,
			CapSeeClaims,
			CapSeeShipping,
			CapSeeReports,
			CapManageSettings,
		), nil
	case RoleLocationUser:
		return capabilitySetOf(
			CapSeeDashboard,
			CapSeeOrders,
			CapCreateOrders,
			CapSeeCustomers,
			CapSeeProducts,
			CapSeeClaims,
			CapSeeShipping,
		), nil
	}
	return emptyCapabilitySet(), shared.ErrUnknownRole
}

// CapabilitiesForActor resolves the capability set for an actor.
// Unauthenticated actors get the all-false set without an error; the caller
// redirects to login instead of surfacing a configuration problem.
func CapabilitiesForActor(actor Actor) CapabilitySet {
	if !actor.IsAuthenticated() {
		return emptyCapabilitySet()
	}
	set, err := CapabilitiesFor(actor.Role)
	if err != nil {
		return emptyCapabilitySet()
	}
	return set
}
