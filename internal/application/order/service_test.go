package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/order"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

type fakeOrderRepo struct {
	records map[string]order.PersistedRecord
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{records: make(map[string]order.PersistedRecord)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*order.PersistedRecord, error) {
	if rec, ok := r.records[id]; ok {
		return &rec, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]order.PersistedRecord, error) {
	records := make([]order.PersistedRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	return records, nil
}

func (r *fakeOrderRepo) FindAllForRetailer(_ context.Context, retailerID string, _ shared.Filter) ([]order.PersistedRecord, error) {
	var records []order.PersistedRecord
	for _, rec := range r.records {
		if rec.RetailerID == retailerID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *fakeOrderRepo) FindAllForLocation(_ context.Context, locationID string, _ shared.Filter) ([]order.PersistedRecord, error) {
	var records []order.PersistedRecord
	for _, rec := range r.records {
		if rec.LocationID != nil && *rec.LocationID == locationID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, rec *order.PersistedRecord) error {
	r.records[rec.ID] = *rec
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.records)), nil
}

func newTestService() (*Service, *fakeOrderRepo, *order.Store) {
	repo := newFakeOrderRepo()
	store := order.NewStore()
	svc := NewService(repo, order.NewNormalizer(zap.NewNop()), store, zap.NewNop())
	return svc, repo, store
}

func ownerActor() identity.Actor {
	return identity.NewActor(uuid.New(), identity.RoleOwner)
}

func retailerActor(retailerID uuid.UUID) identity.Actor {
	return identity.NewActor(uuid.New(), identity.RoleRetailer).WithRetailerScope(retailerID)
}

func locationActor(retailerID, locationID uuid.UUID) identity.Actor {
	return identity.NewActor(uuid.New(), identity.RoleLocationUser).
		WithRetailerScope(retailerID).
		WithLocationScope(locationID)
}

func TestService_CreateFillsDefaults(t *testing.T) {
	svc, repo, store := newTestService()
	actor := ownerActor()

	view, err := svc.Create(context.Background(), actor, CreateOrderInput{})
	require.NoError(t, err)

	o := view.Order
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, order.DefaultRetailerID, o.RetailerID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, actor.ID.String(), o.CreatedBy)
	assert.True(t, view.Total.IsZero())
	assert.False(t, view.TotalMismatch)

	// persisted and published
	assert.Len(t, repo.records, 1)
	assert.Equal(t, 1, store.Len())
}

func TestService_CreateScopesRetailerActor(t *testing.T) {
	svc, _, _ := newTestService()
	retailerID := uuid.New()
	actor := retailerActor(retailerID)

	view, err := svc.Create(context.Background(), actor, CreateOrderInput{})
	require.NoError(t, err)
	assert.Equal(t, retailerID.String(), view.Order.RetailerID)

	// creating under a different retailer is refused
	_, err = svc.Create(context.Background(), actor, CreateOrderInput{
		RetailerID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestService_GetHidesRecordsOutsideScope(t *testing.T) {
	svc, _, _ := newTestService()
	owner := ownerActor()
	retailerID := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateOrderInput{
		RetailerID: retailerID.String(),
	})
	require.NoError(t, err)

	// the owning retailer sees it
	found, err := svc.Get(context.Background(), retailerActor(retailerID), created.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Order.ID, found.Order.ID)

	// a different retailer gets not-found, not forbidden
	_, err = svc.Get(context.Background(), retailerActor(uuid.New()), created.Order.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_ListScopesByRole(t *testing.T) {
	svc, _, _ := newTestService()
	owner := ownerActor()
	retailerA := uuid.New()
	locationA := uuid.New()

	_, err := svc.Create(context.Background(), owner, CreateOrderInput{
		RetailerID: retailerA.String(),
		LocationID: locationA.String(),
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner, CreateOrderInput{
		RetailerID: uuid.New().String(),
	})
	require.NoError(t, err)

	all, err := svc.List(context.Background(), owner, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(context.Background(), retailerActor(retailerA), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	byLocation, err := svc.List(context.Background(), locationActor(retailerA, locationA), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, byLocation, 1)
}

func TestService_LegacyRowSurvivesStatusUpdate(t *testing.T) {
	svc, repo, _ := newTestService()
	owner := ownerActor()

	legacy := order.PersistedRecord{
		ID:          "ORD-LEGACY-1",
		RetailerID:  "ret-old",
		Status:      order.StatusPending.String(),
		OrderAmount: decimal.NewNullDecimal(decimal.RequireFromString("75.00")),
		Items:       "{corrupt json",
		CreatedBy:   "user-legacy",
	}
	require.NoError(t, repo.Save(context.Background(), &legacy))

	view, err := svc.Get(context.Background(), owner, legacy.ID)
	require.NoError(t, err)
	assert.True(t, view.IsLegacy)
	assert.Empty(t, view.Order.Items)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("75.00")))

	updated, err := svc.UpdateStatus(context.Background(), owner, legacy.ID, order.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, updated.Order.Status)
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("75.00")))
}

func TestService_UpdateStatusRejectsInvalidTransition(t *testing.T) {
	svc, _, _ := newTestService()
	owner := ownerActor()

	created, err := svc.Create(context.Background(), owner, CreateOrderInput{})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), owner, created.Order.ID, order.StatusDelivered)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestService_ValidateReportsAllViolations(t *testing.T) {
	svc, _, _ := newTestService()

	// an unauthenticated zero actor still gets a deterministic validation
	result := svc.Validate(identity.Actor{}, CreateOrderInput{})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Order creator ID is required")
}
