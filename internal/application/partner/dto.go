package partner

import "github.com/google/uuid"

// CreateRetailerInput contains input for onboarding a retailer
type CreateRetailerInput struct {
	Code         string
	Name         string
	ContactName  string
	ContactEmail string
	Phone        string
}

// UpdateRetailerInput contains input for editing a retailer's contact info
type UpdateRetailerInput struct {
	RetailerID   uuid.UUID
	Name         string
	ContactName  string
	ContactEmail string
	Phone        string
}

// CreateLocationInput contains input for adding a location to a retailer
type CreateLocationInput struct {
	RetailerID uuid.UUID
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
	Phone      string
}

// CreateCustomerInput contains input for registering a customer
type CreateCustomerInput struct {
	RetailerID uuid.UUID
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
}

// UpdateCustomerInput contains input for editing a customer
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Notes      string
}
