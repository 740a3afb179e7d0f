package shipping

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Status represents the fulfillment state of a shipment
type Status string

const (
	StatusPending      Status = "pending"
	StatusLabelCreated Status = "label_created"
	StatusInTransit    Status = "in_transit"
	StatusDelivered    Status = "delivered"
	StatusCancelled    Status = "cancelled"
)

// IsValid checks if the status is part of the fixed enumeration
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusLabelCreated, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status.
// Cancellation is allowed only before the parcel is in transit.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusLabelCreated || target == StatusCancelled
	case StatusLabelCreated:
		return target == StatusInTransit || target == StatusCancelled
	case StatusInTransit:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false
	}
	return false
}

// Shipment tracks one parcel dispatched for an order
type Shipment struct {
	shared.RetailerAggregateRoot
	OrderID        string
	Carrier        string
	Method         string
	TrackingNumber string
	Status         Status
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// NewShipment creates a pending shipment for an order
func NewShipment(retailerID uuid.UUID, orderID, carrier, method string) (*Shipment, error) {
	if retailerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RETAILER", "Retailer ID cannot be empty")
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, shared.NewDomainError("INVALID_ORDER", "Shipment must reference an order")
	}
	if strings.TrimSpace(carrier) == "" {
		return nil, shared.NewDomainError("INVALID_CARRIER", "Carrier cannot be empty")
	}

	return &Shipment{
		RetailerAggregateRoot: shared.NewRetailerAggregateRoot(retailerID),
		OrderID:               strings.TrimSpace(orderID),
		Carrier:               strings.TrimSpace(carrier),
		Method:                strings.TrimSpace(method),
		Status:                StatusPending,
	}, nil
}

// CreateLabel records the carrier label and tracking number
func (s *Shipment) CreateLabel(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return shared.NewDomainError("INVALID_TRACKING", "Tracking number cannot be empty")
	}
	if err := s.transition(StatusLabelCreated); err != nil {
		return err
	}
	s.TrackingNumber = strings.TrimSpace(trackingNumber)
	return nil
}

// Dispatch marks the parcel as handed to the carrier
func (s *Shipment) Dispatch() error {
	if err := s.transition(StatusInTransit); err != nil {
		return err
	}
	now := time.Now()
	s.ShippedAt = &now
	return nil
}

// MarkDelivered records successful delivery
func (s *Shipment) MarkDelivered() error {
	if err := s.transition(StatusDelivered); err != nil {
		return err
	}
	now := time.Now()
	s.DeliveredAt = &now
	return nil
}

// Cancel aborts the shipment. Parcels already in transit cannot be
// cancelled.
func (s *Shipment) Cancel() error {
	return s.transition(StatusCancelled)
}

func (s *Shipment) transition(target Status) error {
	if !s.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Shipment cannot move from "+string(s.Status)+" to "+string(target))
	}
	s.Status = target
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// InFlight reports whether the parcel is still on its way
func (s *Shipment) InFlight() bool {
	return s.Status == StatusLabelCreated || s.Status == StatusInTransit
}
