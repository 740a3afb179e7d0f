package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/partner"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

// RetailerService handles retailer and location management
type RetailerService struct {
	retailerRepo partner.RetailerRepository
	locationRepo partner.LocationRepository
	logger       *zap.Logger
}

// NewRetailerService creates a new retailer management service
func NewRetailerService(
	retailerRepo partner.RetailerRepository,
	locationRepo partner.LocationRepository,
	logger *zap.Logger,
) *RetailerService {
	return &RetailerService{
		retailerRepo: retailerRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// CreateRetailer onboards a new retailer
func (s *RetailerService) CreateRetailer(ctx context.Context, actor identity.Actor, input CreateRetailerInput) (*partner.Retailer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditRetailers) {
		return nil, shared.ErrForbidden
	}

	if _, err := s.retailerRepo.FindByCode(ctx, input.Code); err == nil {
		return nil, shared.NewDomainError("CODE_TAKEN", "A retailer with this code already exists")
	}

	retailer, err := partner.NewRetailer(input.Code, input.Name)
	if err != nil {
		return nil, err
	}
	retailer.UpdateContact(input.ContactName, input.ContactEmail, input.Phone)

	if err := s.retailerRepo.Save(ctx, retailer); err != nil {
		s.logger.Error("Failed to save retailer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create retailer")
	}

	s.logger.Info("Retailer created",
		zap.String("retailer_id", retailer.ID.String()),
		zap.String("code", retailer.Code),
	)
	return retailer, nil
}

// GetRetailer returns one retailer visible to the actor
func (s *RetailerService) GetRetailer(ctx context.Context, actor identity.Actor, id uuid.UUID) (*partner.Retailer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeRetailers) && !actor.CanAccessRetailer(id) {
		return nil, shared.ErrForbidden
	}
	return s.retailerRepo.FindByID(ctx, id)
}

// ListRetailers returns all retailers. Only roles holding the retailer
// directory capability may enumerate them.
func (s *RetailerService) ListRetailers(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]partner.Retailer, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeRetailers) {
		return nil, shared.ErrForbidden
	}
	return s.retailerRepo.FindAll(ctx, filter)
}

// UpdateRetailer edits a retailer's name and contact details
func (s *RetailerService) UpdateRetailer(ctx context.Context, actor identity.Actor, input UpdateRetailerInput) (*partner.Retailer, error) {
	caps := identity.CapabilitiesForActor(actor)
	ownScope := actor.CanAccessRetailer(input.RetailerID) && caps.Has(identity.CapManageSettings)
	if !caps.Has(identity.CapEditRetailers) && !ownScope {
		return nil, shared.ErrForbidden
	}

	retailer, err := s.retailerRepo.FindByID(ctx, input.RetailerID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if err := retailer.Rename(input.Name); err != nil {
			return nil, err
		}
	}
	retailer.UpdateContact(input.ContactName, input.ContactEmail, input.Phone)

	if err := s.retailerRepo.Save(ctx, retailer); err != nil {
		s.logger.Error("Failed to save retailer update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update retailer")
	}
	return retailer, nil
}

// SetRetailerStatus suspends or reactivates a retailer
func (s *RetailerService) SetRetailerStatus(ctx context.Context, actor identity.Actor, id uuid.UUID, active bool) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapEditRetailers) {
		return shared.ErrForbidden
	}

	retailer, err := s.retailerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if active {
		err = retailer.Reinstate()
	} else {
		err = retailer.Suspend()
	}
	if err != nil {
		return err
	}

	if err := s.retailerRepo.Save(ctx, retailer); err != nil {
		s.logger.Error("Failed to save retailer status change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update retailer")
	}

	s.logger.Info("Retailer status changed",
		zap.String("retailer_id", id.String()),
		zap.Bool("active", active),
	)
	return nil
}

// CreateLocation adds a location under a retailer
func (s *RetailerService) CreateLocation(ctx context.Context, actor identity.Actor, input CreateLocationInput) (*partner.Location, error) {
	caps := identity.CapabilitiesForActor(actor)
	ownScope := actor.CanAccessRetailer(input.RetailerID) && caps.Has(identity.CapManageSettings)
	if !caps.Has(identity.CapEditRetailers) && !ownScope {
		return nil, shared.ErrForbidden
	}

	if _, err := s.retailerRepo.FindByID(ctx, input.RetailerID); err != nil {
		return nil, err
	}

	location, err := partner.NewLocation(input.RetailerID, input.Name)
	if err != nil {
		return nil, err
	}
	location.UpdateAddress(input.Address, input.City, input.State, input.PostalCode, input.Phone)
	location.SetCreatedBy(actor.ID)

	if err := s.locationRepo.Save(ctx, location); err != nil {
		s.logger.Error("Failed to save location", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create location")
	}

	s.logger.Info("Location created",
		zap.String("location_id", location.ID.String()),
		zap.String("retailer_id", input.RetailerID.String()),
	)
	return location, nil
}

// GetLocation returns one location visible to the actor
func (s *RetailerService) GetLocation(ctx context.Context, actor identity.Actor, id uuid.UUID) (*partner.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessLocation(id) && !actor.CanAccessRetailer(location.RetailerID) {
		return nil, shared.ErrNotFound
	}
	return location, nil
}

// ListLocations returns the locations of a retailer visible to the actor
func (s *RetailerService) ListLocations(ctx context.Context, actor identity.Actor, retailerID uuid.UUID, filter shared.Filter) ([]partner.Location, error) {
	if !actor.CanAccessRetailer(retailerID) {
		return nil, shared.ErrForbidden
	}
	return s.locationRepo.FindAllForRetailer(ctx, retailerID, filter)
}

// SetLocationEnabled toggles whether a location can take orders
func (s *RetailerService) SetLocationEnabled(ctx context.Context, actor identity.Actor, id uuid.UUID, enabled bool) error {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	caps := identity.CapabilitiesForActor(actor)
	ownScope := actor.CanAccessRetailer(location.RetailerID) && caps.Has(identity.CapManageSettings)
	if !caps.Has(identity.CapEditRetailers) && !ownScope {
		return shared.ErrForbidden
	}

	if enabled {
		err = location.Enable()
	} else {
		err = location.Disable()
	}
	if err != nil {
		return err
	}

	if err := s.locationRepo.Save(ctx, location); err != nil {
		s.logger.Error("Failed to save location state change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update location")
	}
	return nil
}
