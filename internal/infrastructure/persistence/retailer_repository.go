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

var retailerSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"status":     true,
}

// GormRetailerRepository implements partner.RetailerRepository using GORM
type GormRetailerRepository struct {
	db *gorm.DB
}

// NewGormRetailerRepository creates a new GormRetailerRepository
func NewGormRetailerRepository(db *gorm.DB) *GormRetailerRepository {
	return &GormRetailerRepository{db: db}
}

// FindByID finds a retailer by its ID
func (r *GormRetailerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Retailer, error) {
	var model models.RetailerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a retailer by its unique code
func (r *GormRetailerRepository) FindByCode(ctx context.Context, code string) (*partner.Retailer, error) {
	var model models.RetailerModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToLower(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all retailers matching the filter
func (r *GormRetailerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Retailer, error) {
	var retailerModels []models.RetailerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RetailerModel{}), filter)

	if err := query.Find(&retailerModels).Error; err != nil {
		return nil, err
	}

	retailers := make([]partner.Retailer, len(retailerModels))
	for i, model := range retailerModels {
		retailers[i] = *model.ToDomain()
	}
	return retailers, nil
}

// Save creates or updates a retailer
func (r *GormRetailerRepository) Save(ctx context.Context, retailer *partner.Retailer) error {
	model := models.RetailerModelFromDomain(retailer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a retailer
func (r *GormRetailerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RetailerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts retailers matching the filter
func (r *GormRetailerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RetailerModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRetailerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)
	return applySort(query, filter, retailerSortColumns, "name")
}

func (r *GormRetailerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

// Ensure GormRetailerRepository implements RetailerRepository
var _ partner.RetailerRepository = (*GormRetailerRepository)(nil)
