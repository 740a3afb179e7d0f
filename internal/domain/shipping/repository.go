package shipping

import (
	"context"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Repository defines persistence operations for shipments
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Shipment, error)
	FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]Shipment, error)
	FindAllForOrder(ctx context.Context, orderID string) ([]Shipment, error)
	Save(ctx context.Context, shipment *Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
