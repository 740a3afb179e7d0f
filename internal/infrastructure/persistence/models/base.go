package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel extends BaseModel with version for optimistic locking
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToDomainAggregateRoot converts AggregateModel to domain BaseAggregateRoot
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.BaseModel.ToDomain(),
		Version:    m.Version,
	}
}

// RetailerAggregateModel provides common persistence fields for
// retailer-scoped aggregate roots.
type RetailerAggregateModel struct {
	AggregateModel
	RetailerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid;index"`
}

// FromDomainRetailerAggregateRoot populates the model from the domain root
func (m *RetailerAggregateModel) FromDomainRetailerAggregateRoot(r shared.RetailerAggregateRoot) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.RetailerID = r.RetailerID
	m.CreatedBy = r.CreatedBy
}

// ToDomainRetailerAggregateRoot converts the model to the domain root
func (m *RetailerAggregateModel) ToDomainRetailerAggregateRoot() shared.RetailerAggregateRoot {
	return shared.RetailerAggregateRoot{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		RetailerID:        m.RetailerID,
		CreatedBy:         m.CreatedBy,
	}
}
