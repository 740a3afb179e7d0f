package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Location is a physical store or warehouse under a retailer. Location
// users are bounded to exactly one of these.
type Location struct {
	shared.RetailerAggregateRoot
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
	Phone      string
	IsEnabled  bool
}

// NewLocation creates a new enabled location under the given retailer
func NewLocation(retailerID uuid.UUID, name string) (*Location, error) {
	if retailerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RETAILER", "Retailer ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot be empty")
	}

	return &Location{
		RetailerAggregateRoot: shared.NewRetailerAggregateRoot(retailerID),
		Name:                  strings.TrimSpace(name),
		IsEnabled:             true,
	}, nil
}

// UpdateAddress updates the location's postal details
func (l *Location) UpdateAddress(address, city, state, postalCode, phone string) {
	l.Address = strings.TrimSpace(address)
	l.City = strings.TrimSpace(city)
	l.State = strings.TrimSpace(state)
	l.PostalCode = strings.TrimSpace(postalCode)
	l.Phone = strings.TrimSpace(phone)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// Rename changes the location's display name
func (l *Location) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_LOCATION_NAME", "Location name cannot be empty")
	}
	l.Name = strings.TrimSpace(name)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

// Disable removes the location from day-to-day use
func (l *Location) Disable() error {
	if !l.IsEnabled {
		return shared.NewDomainError("INVALID_STATE", "Location is already disabled")
	}
	l.IsEnabled = false
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

// Enable re-enables a disabled location
func (l *Location) Enable() error {
	if l.IsEnabled {
		return shared.NewDomainError("INVALID_STATE", "Location is already enabled")
	}
	l.IsEnabled = true
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}
