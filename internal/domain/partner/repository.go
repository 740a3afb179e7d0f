package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// RetailerRepository defines persistence operations for retailers
type RetailerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Retailer, error)
	FindByCode(ctx context.Context, code string) (*Retailer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Retailer, error)
	Save(ctx context.Context, retailer *Retailer) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// LocationRepository defines persistence operations for locations
type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)
	FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]Location, error)
	Save(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDForRetailer(ctx context.Context, retailerID, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
