package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/claim"
)

// ClaimModel is the persistence model for the Claim aggregate
type ClaimModel struct {
	RetailerAggregateModel
	OrderID    string       `gorm:"type:varchar(64);not null;index"`
	CustomerID *uuid.UUID   `gorm:"type:uuid;index"`
	Reason     string       `gorm:"type:varchar(200);not null"`
	Details    string       `gorm:"type:text"`
	Status     claim.Status `gorm:"type:varchar(20);not null;index"`
	Resolution string       `gorm:"type:text"`
	ResolvedAt *time.Time
}

// TableName returns the table name for GORM
func (ClaimModel) TableName() string {
	return "claims"
}

// ToDomain converts the persistence model to a domain Claim
func (m *ClaimModel) ToDomain() *claim.Claim {
	return &claim.Claim{
		RetailerAggregateRoot: m.ToDomainRetailerAggregateRoot(),
		OrderID:               m.OrderID,
		CustomerID:            m.CustomerID,
		Reason:                m.Reason,
		Details:               m.Details,
		Status:                m.Status,
		Resolution:            m.Resolution,
		ResolvedAt:            m.ResolvedAt,
	}
}

// FromDomain populates the persistence model from a domain Claim
func (m *ClaimModel) FromDomain(c *claim.Claim) {
	m.FromDomainRetailerAggregateRoot(c.RetailerAggregateRoot)
	m.OrderID = c.OrderID
	m.CustomerID = c.CustomerID
	m.Reason = c.Reason
	m.Details = c.Details
	m.Status = c.Status
	m.Resolution = c.Resolution
	m.ResolvedAt = c.ResolvedAt
}

// ClaimModelFromDomain creates a new persistence model from a domain Claim
func ClaimModelFromDomain(c *claim.Claim) *ClaimModel {
	m := &ClaimModel{}
	m.FromDomain(c)
	return m
}
