package order

import (
	"github.com/shopspring/decimal"

	"github.com/ivrelife/nexus/internal/domain/order"
)

// CreateOrderInput is the caller-supplied part of a new order. Everything
// omitted is filled with defaults before the order is persisted.
type CreateOrderInput struct {
	RetailerID      string
	LocationID      string
	CustomerID      string
	Status          order.Status
	TotalAmount     *decimal.Decimal
	Items           []order.LineItem
	ShippingAddress *order.Address
	BillingAddress  *order.Address
	Metadata        map[string]any
}

// toDraft converts the input into a partial canonical order
func (in CreateOrderInput) toDraft() order.Order {
	draft := order.Order{
		RetailerID:      in.RetailerID,
		LocationID:      in.LocationID,
		CustomerID:      in.CustomerID,
		Status:          in.Status,
		Items:           in.Items,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		Metadata:        in.Metadata,
	}
	if in.TotalAmount != nil {
		draft.TotalAmount = decimal.NewNullDecimal(*in.TotalAmount)
	}
	return draft
}

// OrderView is the canonical order enriched with the data-quality signals
// the dashboard surfaces alongside it.
type OrderView struct {
	Order         order.Order
	Total         decimal.Decimal
	TotalMismatch bool
	IsLegacy      bool
}

func viewOf(o order.Order, rec *order.PersistedRecord) OrderView {
	view := OrderView{
		Order:         o,
		Total:         o.Total(),
		TotalMismatch: o.TotalMismatch(),
	}
	if rec != nil {
		view.IsLegacy = rec.IsLegacy()
	}
	return view
}
