package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// IncrementVersion bumps the optimistic-lock version and refreshes the
// update timestamp. Aggregates call it after every state mutation.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.touch()
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// RetailerAggregateRoot extends BaseAggregateRoot with retailer scoping.
// Most nexus records live under exactly one retailer; the creator is kept
// for record-level attribution.
type RetailerAggregateRoot struct {
	BaseAggregateRoot
	RetailerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid;index"`
}

// NewRetailerAggregateRoot creates a new retailer-scoped aggregate root
func NewRetailerAggregateRoot(retailerID uuid.UUID) RetailerAggregateRoot {
	return RetailerAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		RetailerID:        retailerID,
	}
}

// SetCreatedBy sets the creator user ID
func (r *RetailerAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	r.CreatedBy = &userID
}

// GetCreatedBy returns the creator user ID
func (r *RetailerAggregateRoot) GetCreatedBy() *uuid.UUID {
	return r.CreatedBy
}
