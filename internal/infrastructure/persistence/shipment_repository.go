package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ivrelife/nexus/internal/domain/shared"
	"github.com/ivrelife/nexus/internal/domain/shipping"
	"github.com/ivrelife/nexus/internal/infrastructure/persistence/models"
)

var shipmentSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"carrier":    true,
	"shipped_at": true,
}

// GormShipmentRepository implements shipping.Repository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByID finds a shipment by its ID
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Shipment, error) {
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTrackingNumber finds a shipment by its carrier tracking number
func (r *GormShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipping.Shipment, error) {
	if trackingNumber == "" {
		return nil, shared.NewDomainError("INVALID_TRACKING", "Tracking number cannot be empty")
	}
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all shipments matching the filter
func (r *GormShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.Shipment, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ShipmentModel{}), filter)
	return r.findShipments(query)
}

// FindAllForRetailer finds all shipments belonging to a retailer
func (r *GormShipmentRepository) FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]shipping.Shipment, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ShipmentModel{}).Where("retailer_id = ?", retailerID),
		filter,
	)
	return r.findShipments(query)
}

// FindAllForOrder finds all shipments dispatched for an order
func (r *GormShipmentRepository) FindAllForOrder(ctx context.Context, orderID string) ([]shipping.Shipment, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ShipmentModel{}).
		Where("order_id = ?", orderID).
		Order("created_at DESC")
	return r.findShipments(query)
}

func (r *GormShipmentRepository) findShipments(query *gorm.DB) ([]shipping.Shipment, error) {
	var shipmentModels []models.ShipmentModel
	if err := query.Find(&shipmentModels).Error; err != nil {
		return nil, err
	}
	shipments := make([]shipping.Shipment, len(shipmentModels))
	for i := range shipmentModels {
		shipments[i] = *shipmentModels[i].ToDomain()
	}
	return shipments, nil
}

// Save creates or updates a shipment
func (r *GormShipmentRepository) Save(ctx context.Context, s *shipping.Shipment) error {
	model := models.ShipmentModelFromDomain(s)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a shipment
func (r *GormShipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShipmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts shipments matching the filter
func (r *GormShipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ShipmentModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormShipmentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)
	return applySort(query, filter, shipmentSortColumns, "created_at")
}

func (r *GormShipmentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(tracking_number) LIKE ? OR LOWER(order_id) LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "carrier":
			query = query.Where("carrier = ?", value)
		}
	}
	return query
}

// Ensure GormShipmentRepository implements shipping.Repository
var _ shipping.Repository = (*GormShipmentRepository)(nil)
