package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of an order
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
	StatusCompleted  Status = "completed"
)

// IsValid checks if the status is part of the fixed enumeration
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusDraft:
		return target == StatusPending || target == StatusCancelled
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered:
		return target == StatusReturned || target == StatusCompleted
	case StatusReturned, StatusCancelled, StatusCompleted:
		return false
	}
	return false
}

// LineItem is one position of an order
type LineItem struct {
	ProductVariantID string          `json:"product_variant_id"`
	Name             string          `json:"name,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity times unit price
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Address is a structured postal address attached to an order
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// Order is the canonical in-memory order representation every view works
// with. Each fetch produces an independent copy; instances are never shared
// mutable state across views.
//
// TotalAmount and LegacyAmount mirror the two historical amount columns; a
// record is considered to carry an amount when either one is set, and
// Total() coalesces them in that priority order.
type Order struct {
	ID              string
	RetailerID      string
	LocationID      string
	CustomerID      string
	Status          Status
	TotalAmount     decimal.NullDecimal
	LegacyAmount    decimal.NullDecimal
	Items           []LineItem
	ShippingAddress *Address
	BillingAddress  *Address
	Metadata        map[string]any
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Total returns the order's amount, coalescing the two historical fields.
// Returns zero when neither is set.
func (o Order) Total() decimal.Decimal {
	if o.TotalAmount.Valid {
		return o.TotalAmount.Decimal
	}
	if o.LegacyAmount.Valid {
		return o.LegacyAmount.Decimal
	}
	return decimal.Zero
}

// HasAmount reports whether either historical amount field is populated
func (o Order) HasAmount() bool {
	return o.TotalAmount.Valid || o.LegacyAmount.Valid
}

// ItemsTotal returns the sum of all line item subtotals
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalMismatch reports whether the stored amount disagrees with the line
// items. Mismatches are a data-quality concern to surface, never a reason to
// reject the order: explicit overrides and legacy rows both produce them.
func (o Order) TotalMismatch() bool {
	if !o.HasAmount() || len(o.Items) == 0 {
		return false
	}
	return !o.Total().Equal(o.ItemsTotal())
}

// ValidationResult carries every violated check of a validation pass
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate runs the exhaustive pre-save checks on a canonical order and
// returns all violations, not just the first. Callers decide whether a
// failed validation blocks the save.
func Validate(o Order) ValidationResult {
	errs := []string{}
	if o.ID == "" {
		errs = append(errs, "Order ID is required")
	}
	if o.Status == "" {
		errs = append(errs, "Order status is required")
	}
	if !o.HasAmount() {
		errs = append(errs, "Order total amount is required")
	}
	if o.CreatedBy == "" {
		errs = append(errs, "Order creator ID is required")
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
