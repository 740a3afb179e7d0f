package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/partner"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

// CustomerService handles customer records. Customers belong to exactly one
// retailer; every read and write is bounded by the actor's scope.
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer management service
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, logger: logger}
}

// CreateCustomer registers a customer under a retailer
func (s *CustomerService) CreateCustomer(ctx context.Context, actor identity.Actor, input CreateCustomerInput) (*partner.Customer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditCustomers) {
		return nil, shared.ErrForbidden
	}

	retailerID := input.RetailerID
	if retailerID == uuid.Nil && actor.RetailerID != nil {
		retailerID = *actor.RetailerID
	}
	if !actor.CanAccessRetailer(retailerID) {
		return nil, shared.ErrForbidden
	}

	customer, err := partner.NewCustomer(retailerID, input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}
	customer.UpdateAddress(input.Address, input.City, input.State, input.PostalCode)
	customer.SetCreatedBy(actor.ID)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create customer")
	}

	s.logger.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("retailer_id", retailerID.String()),
	)
	return customer, nil
}

// GetCustomer returns one customer visible to the actor
func (s *CustomerService) GetCustomer(ctx context.Context, actor identity.Actor, id uuid.UUID) (*partner.Customer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeCustomers) {
		return nil, shared.ErrForbidden
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canSee(actor, customer) {
		return nil, shared.ErrNotFound
	}
	return customer, nil
}

// ListCustomers returns the customers inside the actor's scope
func (s *CustomerService) ListCustomers(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]partner.Customer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeCustomers) {
		return nil, shared.ErrForbidden
	}

	if actor.RetailerID != nil {
		return s.customerRepo.FindAllForRetailer(ctx, *actor.RetailerID, filter)
	}
	return s.customerRepo.FindAll(ctx, filter)
}

// UpdateCustomer edits a customer's details
func (s *CustomerService) UpdateCustomer(ctx context.Context, actor identity.Actor, input UpdateCustomerInput) (*partner.Customer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditCustomers) {
		return nil, shared.ErrForbidden
	}

	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !s.canSee(actor, customer) {
		return nil, shared.ErrNotFound
	}

	if err := customer.UpdateDetails(input.Name, input.Email, input.Phone); err != nil {
		return nil, err
	}
	customer.UpdateAddress(input.Address, input.City, input.State, input.PostalCode)
	if input.Notes != "" {
		customer.SetNotes(input.Notes)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update customer")
	}
	return customer, nil
}

// DeleteCustomer removes a customer record
func (s *CustomerService) DeleteCustomer(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditCustomers) {
		return shared.ErrForbidden
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.canSee(actor, customer) {
		return shared.ErrNotFound
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Customer deleted",
		zap.String("customer_id", id.String()),
		zap.String("deleted_by", actor.ID.String()),
	)
	return nil
}

// canSee decides record-level visibility. Location users see the customers
// of their retailer; retailer-bounded actors only their own retailer's.
func (s *CustomerService) canSee(actor identity.Actor, customer *partner.Customer) bool {
	if actor.CanAccessRetailer(customer.RetailerID) {
		return true
	}
	// Location users cannot access retailer-wide records directly, but
	// customer lookups inside their own retailer are part of order intake.
	return actor.Role == identity.RoleLocationUser &&
		actor.RetailerID != nil && *actor.RetailerID == customer.RetailerID
}
