package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersistedRecord is the backend row shape for an order. Line items,
// addresses and metadata travel as JSON text blobs that the storage layer
// treats as opaque; location and customer references are nullable. Rows
// written across schema revisions may populate either of the two amount
// columns and may carry blobs that no longer deserialize.
//
// The Normalizer is the only code path allowed to interpret this shape.
type PersistedRecord struct {
	ID              string              `json:"id"`
	RetailerID      string              `json:"retailer_id"`
	LocationID      *string             `json:"location_id"`
	CustomerID      *string             `json:"customer_id"`
	Status          string              `json:"status"`
	TotalAmount     decimal.NullDecimal `json:"total_amount"`
	OrderAmount     decimal.NullDecimal `json:"order_amount"`
	Items           string              `json:"items"`
	ShippingAddress *string             `json:"shipping_address"`
	BillingAddress  *string             `json:"billing_address"`
	Metadata        *string             `json:"metadata"`
	CreatedBy       string              `json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// IsLegacy reports whether the row predates the current schema revision:
// only the legacy amount column is populated.
func (r PersistedRecord) IsLegacy() bool {
	return !r.TotalAmount.Valid && r.OrderAmount.Valid
}
