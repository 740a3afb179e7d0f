package order

import (
	"context"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Repository defines persistence operations for orders. Implementations
// read and write the PersistedRecord row shape; canonical orders only exist
// in memory after the Normalizer has run.
type Repository interface {
	FindByID(ctx context.Context, id string) (*PersistedRecord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PersistedRecord, error)
	FindAllForRetailer(ctx context.Context, retailerID string, filter shared.Filter) ([]PersistedRecord, error)
	FindAllForLocation(ctx context.Context, locationID string, filter shared.Filter) ([]PersistedRecord, error)
	Save(ctx context.Context, rec *PersistedRecord) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
