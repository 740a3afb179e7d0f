package partner

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Customer is a retail customer record owned by one retailer
type Customer struct {
	shared.RetailerAggregateRoot
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Notes      string
}

// NewCustomer creates a new customer under the given retailer
func NewCustomer(retailerID uuid.UUID, name, email, phone string) (*Customer, error) {
	if retailerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RETAILER", "Retailer ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email is not valid")
		}
	}

	return &Customer{
		RetailerAggregateRoot: shared.NewRetailerAggregateRoot(retailerID),
		Name:                  strings.TrimSpace(name),
		Email:                 email,
		Phone:                 strings.TrimSpace(phone),
	}, nil
}

// UpdateDetails updates the customer's basic information
func (c *Customer) UpdateDetails(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return shared.NewDomainError("INVALID_EMAIL", "Customer email is not valid")
		}
	}
	c.Name = strings.TrimSpace(name)
	c.Email = email
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// UpdateAddress updates the customer's postal details
func (c *Customer) UpdateAddress(address, city, state, postalCode string) {
	c.Address = strings.TrimSpace(address)
	c.City = strings.TrimSpace(city)
	c.State = strings.TrimSpace(state)
	c.PostalCode = strings.TrimSpace(postalCode)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetNotes replaces the free-form notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
