package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ivrelife/nexus/internal/domain/claim"
	"github.com/ivrelife/nexus/internal/domain/shared"
	"github.com/ivrelife/nexus/internal/infrastructure/persistence/models"
)

var claimSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"reason":     true,
}

// GormClaimRepository implements claim.Repository using GORM
type GormClaimRepository struct {
	db *gorm.DB
}

// NewGormClaimRepository creates a new GormClaimRepository
func NewGormClaimRepository(db *gorm.DB) *GormClaimRepository {
	return &GormClaimRepository{db: db}
}

// FindByID finds a claim by its ID
func (r *GormClaimRepository) FindByID(ctx context.Context, id uuid.UUID) (*claim.Claim, error) {
	var model models.ClaimModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all claims matching the filter
func (r *GormClaimRepository) FindAll(ctx context.Context, filter shared.Filter) ([]claim.Claim, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClaimModel{}), filter)
	return r.findClaims(query)
}

// FindAllForRetailer finds all claims belonging to a retailer
func (r *GormClaimRepository) FindAllForRetailer(ctx context.Context, retailerID uuid.UUID, filter shared.Filter) ([]claim.Claim, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClaimModel{}).Where("retailer_id = ?", retailerID),
		filter,
	)
	return r.findClaims(query)
}

// FindAllForOrder finds all claims raised against an order
func (r *GormClaimRepository) FindAllForOrder(ctx context.Context, orderID string) ([]claim.Claim, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ClaimModel{}).
		Where("order_id = ?", orderID).
		Order("created_at DESC")
	return r.findClaims(query)
}

func (r *GormClaimRepository) findClaims(query *gorm.DB) ([]claim.Claim, error) {
	var claimModels []models.ClaimModel
	if err := query.Find(&claimModels).Error; err != nil {
		return nil, err
	}
	claims := make([]claim.Claim, len(claimModels))
	for i := range claimModels {
		claims[i] = *claimModels[i].ToDomain()
	}
	return claims, nil
}

// Save creates or updates a claim
func (r *GormClaimRepository) Save(ctx context.Context, c *claim.Claim) error {
	model := models.ClaimModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a claim
func (r *GormClaimRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClaimModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts claims matching the filter
func (r *GormClaimRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClaimModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormClaimRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)
	return applySort(query, filter, claimSortColumns, "created_at")
}

func (r *GormClaimRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(reason) LIKE ? OR LOWER(order_id) LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		}
	}
	return query
}

// Ensure GormClaimRepository implements claim.Repository
var _ claim.Repository = (*GormClaimRepository)(nil)
