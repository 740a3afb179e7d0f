package shipping

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shared"
	"github.com/ivrelife/nexus/internal/domain/shipping"
)

// CreateShipmentInput contains input for opening a shipment on an order
type CreateShipmentInput struct {
	RetailerID uuid.UUID
	OrderID    string
	Carrier    string
	Method     string
}

// Service handles shipment lifecycle for fulfilled orders
type Service struct {
	shipmentRepo shipping.Repository
	logger       *zap.Logger
}

// NewService creates a new shipping service
func NewService(shipmentRepo shipping.Repository, logger *zap.Logger) *Service {
	return &Service{shipmentRepo: shipmentRepo, logger: logger}
}

// Create opens a pending shipment for an order
func (s *Service) Create(ctx context.Context, actor identity.Actor, input CreateShipmentInput) (*shipping.Shipment, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeShipping) {
		return nil, shared.ErrForbidden
	}

	retailerID := input.RetailerID
	if retailerID == uuid.Nil && actor.RetailerID != nil {
		retailerID = *actor.RetailerID
	}
	if !s.inScope(actor, retailerID) {
		return nil, shared.ErrForbidden
	}

	shipment, err := shipping.NewShipment(retailerID, input.OrderID, input.Carrier, input.Method)
	if err != nil {
		return nil, err
	}
	shipment.SetCreatedBy(actor.ID)

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		s.logger.Error("Failed to save shipment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create shipment")
	}

	s.logger.Info("Shipment created",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("order_id", input.OrderID),
		zap.String("carrier", shipment.Carrier),
	)
	return shipment, nil
}

// Get returns one shipment visible to the actor
func (s *Service) Get(ctx context.Context, actor identity.Actor, id uuid.UUID) (*shipping.Shipment, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeShipping) {
		return nil, shared.ErrForbidden
	}

	shipment, err := s.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.inScope(actor, shipment.RetailerID) {
		return nil, shared.ErrNotFound
	}
	return shipment, nil
}

// Track looks a shipment up by its carrier tracking number
func (s *Service) Track(ctx context.Context, actor identity.Actor, trackingNumber string) (*shipping.Shipment, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeShipping) {
		return nil, shared.ErrForbidden
	}

	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	if !s.inScope(actor, shipment.RetailerID) {
		return nil, shared.ErrNotFound
	}
	return shipment, nil
}

// List returns the shipments inside the actor's scope
func (s *Service) List(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]shipping.Shipment, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeShipping) {
		return nil, shared.ErrForbidden
	}

	if actor.RetailerID != nil {
		return s.shipmentRepo.FindAllForRetailer(ctx, *actor.RetailerID, filter)
	}
	return s.shipmentRepo.FindAll(ctx, filter)
}

// ListForOrder returns the shipments dispatched for one order
func (s *Service) ListForOrder(ctx context.Context, actor identity.Actor, orderID string) ([]shipping.Shipment, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeShipping) {
		return nil, shared.ErrForbidden
	}

	shipments, err := s.shipmentRepo.FindAllForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	visible := make([]shipping.Shipment, 0, len(shipments))
	for _, sh := range shipments {
		if s.inScope(actor, sh.RetailerID) {
			visible = append(visible, sh)
		}
	}
	return visible, nil
}

// CreateLabel records the carrier label and tracking number
func (s *Service) CreateLabel(ctx context.Context, actor identity.Actor, id uuid.UUID, trackingNumber string) (*shipping.Shipment, error) {
	return s.advance(ctx, actor, id, func(sh *shipping.Shipment) error { return sh.CreateLabel(trackingNumber) })
}

// Dispatch marks the parcel as handed to the carrier
func (s *Service) Dispatch(ctx context.Context, actor identity.Actor, id uuid.UUID) (*shipping.Shipment, error) {
	return s.advance(ctx, actor, id, func(sh *shipping.Shipment) error { return sh.Dispatch() })
}

// MarkDelivered records successful delivery
func (s *Service) MarkDelivered(ctx context.Context, actor identity.Actor, id uuid.UUID) (*shipping.Shipment, error) {
	return s.advance(ctx, actor, id, func(sh *shipping.Shipment) error { return sh.MarkDelivered() })
}

// Cancel aborts a shipment that has not yet left the warehouse
func (s *Service) Cancel(ctx context.Context, actor identity.Actor, id uuid.UUID) (*shipping.Shipment, error) {
	return s.advance(ctx, actor, id, func(sh *shipping.Shipment) error { return sh.Cancel() })
}

func (s *Service) advance(ctx context.Context, actor identity.Actor, id uuid.UUID, step func(*shipping.Shipment) error) (*shipping.Shipment, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeShipping) {
		return nil, shared.ErrForbidden
	}

	shipment, err := s.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.inScope(actor, shipment.RetailerID) {
		return nil, shared.ErrNotFound
	}

	if err := step(shipment); err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		s.logger.Error("Failed to save shipment transition", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update shipment")
	}

	s.logger.Info("Shipment advanced",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("status", string(shipment.Status)),
	)
	return shipment, nil
}

// inScope lets location users work their retailer's shipments; the
// fulfillment desk sits at the location even though shipments are
// retailer-owned records.
func (s *Service) inScope(actor identity.Actor, retailerID uuid.UUID) bool {
	if actor.CanAccessRetailer(retailerID) {
		return true
	}
	return actor.Role == identity.RoleLocationUser &&
		actor.RetailerID != nil && *actor.RetailerID == retailerID
}
