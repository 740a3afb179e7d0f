package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/infrastructure/ids"
)

// DefaultRetailerID is the placeholder retailer injected when a caller
// drafts an order without choosing a retailer. It matches the seeded
// house retailer row.
const DefaultRetailerID = "ret-ivrelife-main"

// Normalizer maps between the canonical Order and the backend's persisted
// row shape. It is pure and synchronous: decode fallbacks are logged, never
// raised, and no call performs I/O.
type Normalizer struct {
	log *zap.Logger
}

// NewNormalizer creates a Normalizer. A nil logger is replaced with a nop
// logger so the transform path can never panic on logging.
func NewNormalizer(log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{log: log}
}

// WithDefaults produces a fully-populated draft order for "new order" flows:
// a fresh unique id, pending status, zero total, empty items and the acting
// user as creator. Any field the caller did supply is kept.
func (n *Normalizer) WithDefaults(partial Order, actorID string) Order {
	now := time.Now()
	draft := partial

	if draft.ID == "" {
		draft.ID = ids.NewOrderID()
	}
	if draft.RetailerID == "" {
		draft.RetailerID = DefaultRetailerID
	}
	if draft.Status == "" {
		draft.Status = StatusPending
	}
	if !draft.HasAmount() {
		draft.TotalAmount = decimal.NewNullDecimal(decimal.Zero)
	}
	if draft.Items == nil {
		draft.Items = []LineItem{}
	}
	if draft.Metadata == nil {
		draft.Metadata = map[string]any{}
	}
	if draft.CreatedBy == "" {
		draft.CreatedBy = actorID
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	if draft.UpdatedAt.IsZero() {
		draft.UpdatedAt = now
	}
	return draft
}

// ToPersisted converts a canonical order into the backend row shape. It is
// total: gaps are filled with documented defaults (placeholder retailer,
// pending status, the acting user as creator) instead of being rejected, so
// the returned record is always fully populated.
func (n *Normalizer) ToPersisted(o Order, actorID string) PersistedRecord {
	filled := n.WithDefaults(o, actorID)

	rec := PersistedRecord{
		ID:          filled.ID,
		RetailerID:  filled.RetailerID,
		Status:      filled.Status.String(),
		TotalAmount: decimal.NewNullDecimal(filled.Total()),
		OrderAmount: filled.LegacyAmount,
		Items:       marshalOrDefault(n.log, filled.ID, "items", filled.Items, "[]"),
		CreatedBy:   filled.CreatedBy,
		CreatedAt:   filled.CreatedAt,
		UpdatedAt:   filled.UpdatedAt,
	}

	if filled.LocationID != "" {
		rec.LocationID = &filled.LocationID
	}
	if filled.CustomerID != "" {
		rec.CustomerID = &filled.CustomerID
	}
	if filled.ShippingAddress != nil {
		blob := marshalOrDefault(n.log, filled.ID, "shipping_address", filled.ShippingAddress, "")
		if blob != "" {
			rec.ShippingAddress = &blob
		}
	}
	if filled.BillingAddress != nil {
		blob := marshalOrDefault(n.log, filled.ID, "billing_address", filled.BillingAddress, "")
		if blob != "" {
			rec.BillingAddress = &blob
		}
	}
	metadata := marshalOrDefault(n.log, filled.ID, "metadata", filled.Metadata, "{}")
	rec.Metadata = &metadata

	return rec
}

// FromPersisted converts a backend row into the canonical order. Each
// serialized field is decoded independently: a corrupt blob degrades to a
// typed empty default for that field only — an unreadable items column must
// never cost the caller a perfectly good shipping address. Fallbacks are
// logged at Warn and the transformation of the record as a whole never
// fails. Calling it twice on the same record yields identical results.
func (n *Normalizer) FromPersisted(rec PersistedRecord) Order {
	o := Order{
		ID:           rec.ID,
		RetailerID:   rec.RetailerID,
		Status:       Status(rec.Status),
		TotalAmount:  rec.TotalAmount,
		LegacyAmount: rec.OrderAmount,
		Items:        []LineItem{},
		Metadata:     map[string]any{},
		CreatedBy:    rec.CreatedBy,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}

	if rec.LocationID != nil {
		o.LocationID = *rec.LocationID
	}
	if rec.CustomerID != nil {
		o.CustomerID = *rec.CustomerID
	}

	if rec.Items != "" {
		var items []LineItem
		if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
			n.logFallback(rec.ID, "items", err)
		} else if items != nil {
			o.Items = items
		}
	}

	o.ShippingAddress = n.decodeAddress(rec.ID, "shipping_address", rec.ShippingAddress)
	o.BillingAddress = n.decodeAddress(rec.ID, "billing_address", rec.BillingAddress)

	if rec.Metadata != nil && *rec.Metadata != "" {
		var metadata map[string]any
		if err := json.Unmarshal([]byte(*rec.Metadata), &metadata); err != nil {
			n.logFallback(rec.ID, "metadata", err)
		} else if metadata != nil {
			o.Metadata = metadata
		}
	}

	return o
}

func (n *Normalizer) decodeAddress(recordID, field string, blob *string) *Address {
	if blob == nil || *blob == "" {
		return nil
	}
	var addr Address
	if err := json.Unmarshal([]byte(*blob), &addr); err != nil {
		n.logFallback(recordID, field, err)
		return nil
	}
	return &addr
}

func (n *Normalizer) logFallback(recordID, field string, err error) {
	n.log.Warn("persisted order field failed to deserialize, substituting default",
		zap.String("order_id", recordID),
		zap.String("field", field),
		zap.Error(err),
	)
}

func marshalOrDefault(log *zap.Logger, recordID, field string, v any, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Only reachable for values that cannot be represented as JSON;
		// the canonical order types always can.
		log.Warn("order field failed to serialize, substituting default",
			zap.String("order_id", recordID),
			zap.String("field", field),
			zap.Error(err),
		)
		return fallback
	}
	return string(data)
}
