package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ivrelife/nexus/internal/domain/partner"
	"github.com/ivrelife/nexus/internal/domain/shared"
	"github.com/ivrelife/nexus/internal/infrastructure/persistence/models"
)

var locationSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"city":       true,
}

// GormLocationRepository implements partner.LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByID finds a location by its ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Location, error) {
	var model models.LocationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForRetailer finds all locations belonging to a retailer
func (r *GormLocationRepository) FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]partner.Location, error) {
	var locationModels []models.LocationModel
	query := r.db.WithContext(ctx).
		Model(&models.LocationModel{}).
		Where("retailer_id = ?", retailerID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern)
	}
	query = applyPagination(query, filter)
	query = applySort(query, filter, locationSortColumns, "name")

	if err := query.Find(&locationModels).Error; err != nil {
		return nil, err
	}

	locations := make([]partner.Location, len(locationModels))
	for i, model := range locationModels {
		locations[i] = *model.ToDomain()
	}
	return locations, nil
}

// Save creates or updates a location
func (r *GormLocationRepository) Save(ctx context.Context, location *partner.Location) error {
	model := models.LocationModelFromDomain(location)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a location
func (r *GormLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LocationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormLocationRepository implements LocationRepository
var _ partner.LocationRepository = (*GormLocationRepository)(nil)
