package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// RetailerStatus represents the lifecycle status of a retailer
type RetailerStatus string

const (
	RetailerStatusActive    RetailerStatus = "active"
	RetailerStatusSuspended RetailerStatus = "suspended"
)

var retailerCodeRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Retailer is a tenant of the nexus: a dealer organization owning one or
// more physical locations. It is the aggregate root for tenant management.
type Retailer struct {
	shared.BaseAggregateRoot
	Code         string
	Name         string
	ContactName  string
	ContactEmail string
	Phone        string
	Status       RetailerStatus
}

// NewRetailer creates a new active retailer
func NewRetailer(code, name string) (*Retailer, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_RETAILER_CODE", "Retailer code cannot be empty")
	}
	if !retailerCodeRegex.MatchString(code) {
		return nil, shared.NewDomainError("INVALID_RETAILER_CODE", "Retailer code must start with a letter and contain only lowercase letters, numbers, and hyphens")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_RETAILER_NAME", "Retailer name cannot be empty")
	}

	return &Retailer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              strings.TrimSpace(name),
		Status:            RetailerStatusActive,
	}, nil
}

// UpdateContact updates the retailer's contact information
func (r *Retailer) UpdateContact(contactName, contactEmail, phone string) {
	r.ContactName = strings.TrimSpace(contactName)
	r.ContactEmail = strings.ToLower(strings.TrimSpace(contactEmail))
	r.Phone = strings.TrimSpace(phone)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// Rename changes the retailer's display name
func (r *Retailer) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_RETAILER_NAME", "Retailer name cannot be empty")
	}
	r.Name = strings.TrimSpace(name)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Suspend blocks the retailer and all its users from the dashboard
func (r *Retailer) Suspend() error {
	if r.Status == RetailerStatusSuspended {
		return shared.NewDomainError("INVALID_STATE", "Retailer is already suspended")
	}
	r.Status = RetailerStatusSuspended
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Reinstate reactivates a suspended retailer
func (r *Retailer) Reinstate() error {
	if r.Status == RetailerStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Retailer is already active")
	}
	r.Status = RetailerStatusActive
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// IsActive reports whether the retailer may use the dashboard
func (r *Retailer) IsActive() bool {
	return r.Status == RetailerStatusActive
}
