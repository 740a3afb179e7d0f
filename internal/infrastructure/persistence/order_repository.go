package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ivrelife/nexus/internal/domain/order"
	"github.com/ivrelife/nexus/internal/domain/shared"
	"github.com/ivrelife/nexus/internal/infrastructure/persistence/models"
)

var orderSortColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"id":           true,
	"status":       true,
	"total_amount": true,
}

// GormOrderRepository implements order.Repository using GORM. It moves
// PersistedRecord rows in and out of storage without interpreting the
// JSON blob columns; normalization happens in the order domain.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order row by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*order.PersistedRecord, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	rec := model.ToRecord()
	return &rec, nil
}

// FindAll finds all order rows matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.PersistedRecord, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	return r.findRecords(query)
}

// FindAllForRetailer finds all order rows for a retailer
func (r *GormOrderRepository) FindAllForRetailer(ctx context.Context, retailerID string, filter shared.Filter) ([]order.PersistedRecord, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("retailer_id = ?", retailerID),
		filter,
	)
	return r.findRecords(query)
}

// FindAllForLocation finds all order rows for a location
func (r *GormOrderRepository) FindAllForLocation(ctx context.Context, locationID string, filter shared.Filter) ([]order.PersistedRecord, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("location_id = ?", locationID),
		filter,
	)
	return r.findRecords(query)
}

func (r *GormOrderRepository) findRecords(query *gorm.DB) ([]order.PersistedRecord, error) {
	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}
	records := make([]order.PersistedRecord, len(orderModels))
	for i := range orderModels {
		records[i] = orderModels[i].ToRecord()
	}
	return records, nil
}

// Save creates or updates an order row
func (r *GormOrderRepository) Save(ctx context.Context, rec *order.PersistedRecord) error {
	model := models.OrderModelFromRecord(*rec)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an order row
func (r *GormOrderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts order rows matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)
	return applySort(query, filter, orderSortColumns, "created_at")
}

func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(id) LIKE ?", pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "created_by":
			query = query.Where("created_by = ?", value)
		}
	}
	return query
}

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)
