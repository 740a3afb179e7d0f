package claim

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

// Status represents the workflow state of a claim
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusInReview  Status = "in_review"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusResolved  Status = "resolved"
)

// IsValid checks if the status is part of the fixed enumeration
func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusApproved, StatusDenied, StatusResolved:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusSubmitted:
		return target == StatusInReview
	case StatusInReview:
		return target == StatusApproved || target == StatusDenied
	case StatusApproved, StatusDenied:
		return target == StatusResolved
	case StatusResolved:
		return false
	}
	return false
}

// Claim is a customer complaint or warranty request raised against an
// order. It is owned by the retailer the order belongs to.
type Claim struct {
	shared.RetailerAggregateRoot
	OrderID    string
	CustomerID *uuid.UUID
	Reason     string
	Details    string
	Status     Status
	Resolution string
	ResolvedAt *time.Time
}

// NewClaim creates a newly submitted claim against an order
func NewClaim(retailerID uuid.UUID, orderID, reason string) (*Claim, error) {
	if retailerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RETAILER", "Retailer ID cannot be empty")
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, shared.NewDomainError("INVALID_ORDER", "Claim must reference an order")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Claim reason cannot be empty")
	}

	return &Claim{
		RetailerAggregateRoot: shared.NewRetailerAggregateRoot(retailerID),
		OrderID:               strings.TrimSpace(orderID),
		Reason:                strings.TrimSpace(reason),
		Status:                StatusSubmitted,
	}, nil
}

// AttachCustomer links the claim to the customer who raised it
func (c *Claim) AttachCustomer(customerID uuid.UUID) {
	c.CustomerID = &customerID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetDetails replaces the free-form claim description
func (c *Claim) SetDetails(details string) {
	c.Details = details
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// StartReview moves a submitted claim into review
func (c *Claim) StartReview() error {
	return c.transition(StatusInReview)
}

// Approve accepts a claim under review
func (c *Claim) Approve() error {
	return c.transition(StatusApproved)
}

// Deny rejects a claim under review
func (c *Claim) Deny() error {
	return c.transition(StatusDenied)
}

// Resolve closes an approved or denied claim with a resolution note
func (c *Claim) Resolve(resolution string) error {
	if strings.TrimSpace(resolution) == "" {
		return shared.NewDomainError("INVALID_RESOLUTION", "Resolution note cannot be empty")
	}
	if err := c.transition(StatusResolved); err != nil {
		return err
	}
	now := time.Now()
	c.Resolution = strings.TrimSpace(resolution)
	c.ResolvedAt = &now
	return nil
}

func (c *Claim) transition(target Status) error {
	if !c.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Claim cannot move from "+string(c.Status)+" to "+string(target))
	}
	c.Status = target
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsOpen reports whether the claim still needs attention
func (c *Claim) IsOpen() bool {
	return c.Status != StatusResolved
}
