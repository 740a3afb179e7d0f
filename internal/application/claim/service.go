package claim

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/claim"
	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

// SubmitClaimInput contains input for raising a claim against an order
type SubmitClaimInput struct {
	RetailerID uuid.UUID
	OrderID    string
	CustomerID *uuid.UUID
	Reason     string
	Details    string
}

// Service handles the claim workflow. Anyone who can see claims may submit
// and track them; moving a claim through review requires the resolve
// capability.
type Service struct {
	claimRepo claim.Repository
	logger    *zap.Logger
}

// NewService creates a new claim service
func NewService(claimRepo claim.Repository, logger *zap.Logger) *Service {
	return &Service{claimRepo: claimRepo, logger: logger}
}

// Submit raises a new claim against an order
func (s *Service) Submit(ctx context.Context, actor identity.Actor, input SubmitClaimInput) (*claim.Claim, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeClaims) {
		return nil, shared.ErrForbidden
	}

	retailerID := input.RetailerID
	if retailerID == uuid.Nil && actor.RetailerID != nil {
		retailerID = *actor.RetailerID
	}
	if !s.inScope(actor, retailerID) {
		return nil, shared.ErrForbidden
	}

	c, err := claim.NewClaim(retailerID, input.OrderID, input.Reason)
	if err != nil {
		return nil, err
	}
	if input.CustomerID != nil {
		c.AttachCustomer(*input.CustomerID)
	}
	if input.Details != "" {
		c.SetDetails(input.Details)
	}
	c.SetCreatedBy(actor.ID)

	if err := s.claimRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save claim", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit claim")
	}

	s.logger.Info("Claim submitted",
		zap.String("claim_id", c.ID.String()),
		zap.String("order_id", input.OrderID),
		zap.String("submitted_by", actor.ID.String()),
	)
	return c, nil
}

// Get returns one claim visible to the actor
func (s *Service) Get(ctx context.Context, actor identity.Actor, id uuid.UUID) (*claim.Claim, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeClaims) {
		return nil, shared.ErrForbidden
	}

	c, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.inScope(actor, c.RetailerID) {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

// List returns the claims inside the actor's scope
func (s *Service) List(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]claim.Claim, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeClaims) {
		return nil, shared.ErrForbidden
	}

	if actor.RetailerID != nil {
		return s.claimRepo.FindAllForRetailer(ctx, *actor.RetailerID, filter)
	}
	return s.claimRepo.FindAll(ctx, filter)
}

// ListForOrder returns the claims raised against one order
func (s *Service) ListForOrder(ctx context.Context, actor identity.Actor, orderID string) ([]claim.Claim, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeClaims) {
		return nil, shared.ErrForbidden
	}

	claims, err := s.claimRepo.FindAllForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	visible := make([]claim.Claim, 0, len(claims))
	for _, c := range claims {
		if s.inScope(actor, c.RetailerID) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

// StartReview moves a submitted claim into review
func (s *Service) StartReview(ctx context.Context, actor identity.Actor, id uuid.UUID) (*claim.Claim, error) {
	return s.advance(ctx, actor, id, func(c *claim.Claim) error { return c.StartReview() })
}

// Approve accepts a claim under review
func (s *Service) Approve(ctx context.Context, actor identity.Actor, id uuid.UUID) (*claim.Claim, error) {
	return s.advance(ctx, actor, id, func(c *claim.Claim) error { return c.Approve() })
}

// Deny rejects a claim under review
func (s *Service) Deny(ctx context.Context, actor identity.Actor, id uuid.UUID) (*claim.Claim, error) {
	return s.advance(ctx, actor, id, func(c *claim.Claim) error { return c.Deny() })
}

// Resolve closes an approved or denied claim with a resolution note
func (s *Service) Resolve(ctx context.Context, actor identity.Actor, id uuid.UUID, resolution string) (*claim.Claim, error) {
	return s.advance(ctx, actor, id, func(c *claim.Claim) error { return c.Resolve(resolution) })
}

func (s *Service) advance(ctx context.Context, actor identity.Actor, id uuid.UUID, step func(*claim.Claim) error) (*claim.Claim, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapResolveClaims) {
		return nil, shared.ErrForbidden
	}

	c, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.inScope(actor, c.RetailerID) {
		return nil, shared.ErrNotFound
	}

	if err := step(c); err != nil {
		return nil, err
	}

	if err := s.claimRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save claim transition", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update claim")
	}

	s.logger.Info("Claim advanced",
		zap.String("claim_id", c.ID.String()),
		zap.String("status", string(c.Status)),
		zap.String("by", actor.ID.String()),
	)
	return c, nil
}

// inScope mirrors record-level retailer access but lets location users see
// their own retailer's claims, since claims surface on the location desk.
func (s *Service) inScope(actor identity.Actor, retailerID uuid.UUID) bool {
	if actor.CanAccessRetailer(retailerID) {
		return true
	}
	return actor.Role == identity.RoleLocationUser &&
		actor.RetailerID != nil && *actor.RetailerID == retailerID
}
