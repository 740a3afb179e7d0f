package claim

import (
	"context"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Repository defines persistence operations for claims
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Claim, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Claim, error)
	FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]Claim, error)
	FindAllForOrder(ctx context.Context, orderID string) ([]Claim, error)
	Save(ctx context.Context, claim *Claim) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
