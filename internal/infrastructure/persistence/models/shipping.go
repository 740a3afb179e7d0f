package models

import (
	"time"

	"github.com/ivrelife/nexus/internal/domain/shipping"
)

// ShipmentModel is the persistence model for the Shipment aggregate
type ShipmentModel struct {
	RetailerAggregateModel
	OrderID        string          `gorm:"type:varchar(64);not null;index"`
	Carrier        string          `gorm:"type:varchar(100);not null"`
	Method         string          `gorm:"type:varchar(100)"`
	TrackingNumber string          `gorm:"type:varchar(100);index"`
	Status         shipping.Status `gorm:"type:varchar(20);not null;index"`
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// TableName returns the table name for GORM
func (ShipmentModel) TableName() string {
	return "shipments"
}

// ToDomain converts the persistence model to a domain Shipment
func (m *ShipmentModel) ToDomain() *shipping.Shipment {
	return &shipping.Shipment{
		RetailerAggregateRoot: m.ToDomainRetailerAggregateRoot(),
		OrderID:               m.OrderID,
		Carrier:               m.Carrier,
		Method:                m.Method,
		TrackingNumber:        m.TrackingNumber,
		Status:                m.Status,
		ShippedAt:             m.ShippedAt,
		DeliveredAt:           m.DeliveredAt,
	}
}

// FromDomain populates the persistence model from a domain Shipment
func (m *ShipmentModel) FromDomain(s *shipping.Shipment) {
	m.FromDomainRetailerAggregateRoot(s.RetailerAggregateRoot)
	m.OrderID = s.OrderID
	m.Carrier = s.Carrier
	m.Method = s.Method
	m.TrackingNumber = s.TrackingNumber
	m.Status = s.Status
	m.ShippedAt = s.ShippedAt
	m.DeliveredAt = s.DeliveredAt
}

// ShipmentModelFromDomain creates a new persistence model from a domain Shipment
func ShipmentModelFromDomain(s *shipping.Shipment) *ShipmentModel {
	m := &ShipmentModel{}
	m.FromDomain(s)
	return m
}
