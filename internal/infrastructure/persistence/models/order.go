package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ivrelife/nexus/internal/domain/order"
)

// OrderModel is the persistence model for an order row. It mirrors the
// order.PersistedRecord shape one to one: JSON blobs stay text columns
// and both amount columns are preserved so rows written across schema
// revisions round-trip untouched.
type OrderModel struct {
	ID              string              `gorm:"type:varchar(64);primary_key"`
	RetailerID      string              `gorm:"type:varchar(64);not null;index"`
	LocationID      *string             `gorm:"type:varchar(64);index"`
	CustomerID      *string             `gorm:"type:varchar(64);index"`
	Status          string              `gorm:"type:varchar(20);not null;index"`
	TotalAmount     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	OrderAmount     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Items           string              `gorm:"type:text;not null"`
	ShippingAddress *string             `gorm:"type:text"`
	BillingAddress  *string             `gorm:"type:text"`
	Metadata        *string             `gorm:"type:text"`
	CreatedBy       string              `gorm:"type:varchar(64)"`
	CreatedAt       time.Time           `gorm:"not null"`
	UpdatedAt       time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToRecord converts the persistence model to an order.PersistedRecord
func (m *OrderModel) ToRecord() order.PersistedRecord {
	return order.PersistedRecord{
		ID:              m.ID,
		RetailerID:      m.RetailerID,
		LocationID:      m.LocationID,
		CustomerID:      m.CustomerID,
		Status:          m.Status,
		TotalAmount:     m.TotalAmount,
		OrderAmount:     m.OrderAmount,
		Items:           m.Items,
		ShippingAddress: m.ShippingAddress,
		BillingAddress:  m.BillingAddress,
		Metadata:        m.Metadata,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromRecord populates the persistence model from an order.PersistedRecord
func (m *OrderModel) FromRecord(r order.PersistedRecord) {
	m.ID = r.ID
	m.RetailerID = r.RetailerID
	m.LocationID = r.LocationID
	m.CustomerID = r.CustomerID
	m.Status = r.Status
	m.TotalAmount = r.TotalAmount
	m.OrderAmount = r.OrderAmount
	m.Items = r.Items
	m.ShippingAddress = r.ShippingAddress
	m.BillingAddress = r.BillingAddress
	m.Metadata = r.Metadata
	m.CreatedBy = r.CreatedBy
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}

// OrderModelFromRecord creates a new persistence model from a record
func OrderModelFromRecord(r order.PersistedRecord) *OrderModel {
	m := &OrderModel{}
	m.FromRecord(r)
	return m
}
