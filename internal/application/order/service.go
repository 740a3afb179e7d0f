package order

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/order"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Service handles order workflows. Records cross the storage boundary in
// the persisted row shape; the normalizer turns them into canonical orders
// at the edge of this service and back again on the way in.
type Service struct {
	repo       order.Repository
	normalizer *order.Normalizer
	store      *order.Store
	logger     *zap.Logger
}

// NewService creates a new order service. The store is optional; when
// present, newly created orders are also published to it for live views.
func NewService(repo order.Repository, normalizer *order.Normalizer, store *order.Store, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		normalizer: normalizer,
		store:      store,
		logger:     logger,
	}
}

// Create drafts, validates and persists a new order for the actor
func (s *Service) Create(ctx context.Context, actor identity.Actor, input CreateOrderInput) (*OrderView, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapCreateOrders) {
		return nil, shared.ErrForbidden
	}

	draft := s.normalizer.WithDefaults(input.toDraft(), actor.ID.String())

	// Bounded actors may only create orders inside their own scope.
	if actor.RetailerID != nil && draft.RetailerID != order.DefaultRetailerID &&
		draft.RetailerID != actor.RetailerID.String() {
		return nil, shared.ErrForbidden
	}
	if actor.Role == identity.RoleLocationUser && draft.LocationID != "" &&
		(actor.LocationID == nil || draft.LocationID != actor.LocationID.String()) {
		return nil, shared.ErrForbidden
	}

	// Bind scope defaults from the actor when the caller left them open.
	if draft.RetailerID == order.DefaultRetailerID && actor.RetailerID != nil {
		draft.RetailerID = actor.RetailerID.String()
	}
	if draft.LocationID == "" && actor.LocationID != nil {
		draft.LocationID = actor.LocationID.String()
	}

	if result := order.Validate(draft); !result.Valid {
		return nil, shared.NewDomainError("VALIDATION_FAILED", strings.Join(result.Errors, "; "))
	}

	rec := s.normalizer.ToPersisted(draft, actor.ID.String())
	if err := s.repo.Save(ctx, &rec); err != nil {
		s.logger.Error("Failed to persist order", zap.String("order_id", rec.ID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save order")
	}

	if s.store != nil {
		s.store.Add(draft)
	}

	s.logger.Info("Order created",
		zap.String("order_id", draft.ID),
		zap.String("retailer_id", draft.RetailerID),
		zap.String("created_by", draft.CreatedBy),
	)

	view := viewOf(draft, &rec)
	return &view, nil
}

// Get loads one order visible to the actor
func (s *Service) Get(ctx context.Context, actor identity.Actor, id string) (*OrderView, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeOrders) {
		return nil, shared.ErrForbidden
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canSee(actor, *rec) {
		// Scope misses read as absence, not as a permission probe.
		return nil, shared.ErrNotFound
	}

	o := s.normalizer.FromPersisted(*rec)
	view := viewOf(o, rec)
	return &view, nil
}

// List returns the orders inside the actor's scope. Unbounded roles see all
// orders; a retailer sees their retailer's, a location user their location's.
func (s *Service) List(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]OrderView, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeOrders) {
		return nil, shared.ErrForbidden
	}

	var (
		records []order.PersistedRecord
		err     error
	)
	switch actor.Role {
	case identity.RoleOwner, identity.RoleBackoffice:
		records, err = s.repo.FindAll(ctx, filter)
	case identity.RoleRetailer:
		if actor.RetailerID == nil {
			return nil, shared.ErrForbidden
		}
		records, err = s.repo.FindAllForRetailer(ctx, actor.RetailerID.String(), filter)
	case identity.RoleLocationUser:
		if actor.LocationID == nil {
			return nil, shared.ErrForbidden
		}
		records, err = s.repo.FindAllForLocation(ctx, actor.LocationID.String(), filter)
	default:
		return nil, shared.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, len(records))
	for i := range records {
		o := s.normalizer.FromPersisted(records[i])
		views[i] = viewOf(o, &records[i])
	}
	return views, nil
}

// UpdateStatus advances an order's lifecycle status
func (s *Service) UpdateStatus(ctx context.Context, actor identity.Actor, id string, target order.Status) (*OrderView, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapSeeOrders) {
		return nil, shared.ErrForbidden
	}
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canSee(actor, *rec) {
		return nil, shared.ErrNotFound
	}

	o := s.normalizer.FromPersisted(*rec)
	if !o.Status.CanTransitionTo(target) {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Order cannot move from "+o.Status.String()+" to "+target.String())
	}
	o.Status = target
	o.UpdatedAt = time.Now()

	updated := s.normalizer.ToPersisted(o, o.CreatedBy)
	if err := s.repo.Save(ctx, &updated); err != nil {
		s.logger.Error("Failed to persist order status change",
			zap.String("order_id", id), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save order")
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", target.String()),
		zap.String("updated_by", actor.ID.String()),
	)

	view := viewOf(o, &updated)
	return &view, nil
}

// Validate runs the pre-save checks on a draft without persisting anything.
// An unauthenticated actor contributes no creator, so the creator check
// reports a violation instead of being masked by a zero id.
func (s *Service) Validate(actor identity.Actor, input CreateOrderInput) order.ValidationResult {
	creator := ""
	if actor.IsAuthenticated() {
		creator = actor.ID.String()
	}
	draft := s.normalizer.WithDefaults(input.toDraft(), creator)
	return order.Validate(draft)
}

// canSee decides record-level visibility from the actor's scope. Order rows
// carry retailer/location references as opaque strings, so the comparison is
// textual against the actor's bound scope.
func (s *Service) canSee(actor identity.Actor, rec order.PersistedRecord) bool {
	switch actor.Role {
	case identity.RoleOwner, identity.RoleBackoffice:
		return true
	case identity.RoleRetailer:
		return actor.RetailerID != nil && rec.RetailerID == actor.RetailerID.String()
	case identity.RoleLocationUser:
		return actor.LocationID != nil && rec.LocationID != nil &&
			*rec.LocationID == actor.LocationID.String()
	}
	return false
}
