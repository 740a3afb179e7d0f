package order

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func wellFormedOrder() Order {
	return Order{
		ID:          "ORD-TEST-1",
		RetailerID:  "ret-1",
		LocationID:  "loc-1",
		CustomerID:  "cust-1",
		Status:      StatusProcessing,
		TotalAmount: amount(49.98),
		Items: []LineItem{
			{ProductVariantID: "var-1", Name: "Massage Chair Pad", Quantity: 2, UnitPrice: decimal.NewFromFloat(24.99)},
		},
		ShippingAddress: &Address{
			Line1:      "123 Main St",
			City:       "Austin",
			State:      "TX",
			PostalCode: "78701",
			Country:    "US",
		},
		Metadata:  map[string]any{"source": "dashboard"},
		CreatedBy: "u1",
	}
}

func TestWithDefaults_EmptyPartial(t *testing.T) {
	n := NewNormalizer(nil)

	draft := n.WithDefaults(Order{}, "u1")

	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, StatusPending, draft.Status)
	assert.True(t, draft.HasAmount())
	assert.True(t, decimal.Zero.Equal(draft.Total()))
	assert.NotNil(t, draft.Items)
	assert.Empty(t, draft.Items)
	assert.Equal(t, "u1", draft.CreatedBy)
	assert.Equal(t, DefaultRetailerID, draft.RetailerID)
	assert.False(t, draft.CreatedAt.IsZero())
}

func TestWithDefaults_UniqueIDs(t *testing.T) {
	n := NewNormalizer(nil)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := n.WithDefaults(Order{}, "u1").ID
		require.False(t, seen[id], "duplicate draft id %s", id)
		assert.True(t, strings.HasPrefix(id, "ORD-"))
		seen[id] = true
	}
}

func TestWithDefaults_KeepsSuppliedFields(t *testing.T) {
	n := NewNormalizer(nil)

	draft := n.WithDefaults(Order{
		ID:         "ORD-KEEP",
		RetailerID: "ret-9",
		Status:     StatusDraft,
		CreatedBy:  "u9",
	}, "u1")

	assert.Equal(t, "ORD-KEEP", draft.ID)
	assert.Equal(t, "ret-9", draft.RetailerID)
	assert.Equal(t, StatusDraft, draft.Status)
	assert.Equal(t, "u9", draft.CreatedBy, "caller-supplied creator wins over actor")
}

func TestToPersisted_FullyPopulated(t *testing.T) {
	n := NewNormalizer(nil)

	rec := n.ToPersisted(Order{}, "u1")

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, DefaultRetailerID, rec.RetailerID)
	assert.Equal(t, StatusPending.String(), rec.Status)
	assert.True(t, rec.TotalAmount.Valid)
	assert.Equal(t, "[]", rec.Items)
	require.NotNil(t, rec.Metadata)
	assert.Equal(t, "{}", *rec.Metadata)
	assert.Equal(t, "u1", rec.CreatedBy)
	assert.Nil(t, rec.LocationID)
	assert.Nil(t, rec.CustomerID)
}

func TestRoundTrip_PreservesWellFormedFields(t *testing.T) {
	n := NewNormalizer(nil)
	original := wellFormedOrder()

	got := n.FromPersisted(n.ToPersisted(original, "u1"))

	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.RetailerID, got.RetailerID)
	assert.Equal(t, original.LocationID, got.LocationID)
	assert.Equal(t, original.CustomerID, got.CustomerID)
	assert.Equal(t, original.Status, got.Status)
	assert.True(t, original.Total().Equal(got.Total()))
	require.Len(t, got.Items, 1)
	assert.Equal(t, original.Items[0].ProductVariantID, got.Items[0].ProductVariantID)
	assert.Equal(t, original.Items[0].Quantity, got.Items[0].Quantity)
	assert.True(t, original.Items[0].UnitPrice.Equal(got.Items[0].UnitPrice))
	require.NotNil(t, got.ShippingAddress)
	assert.Equal(t, *original.ShippingAddress, *got.ShippingAddress)
	assert.Nil(t, got.BillingAddress)
	assert.Equal(t, original.Metadata, got.Metadata)
	assert.Equal(t, original.CreatedBy, got.CreatedBy)
}

func TestFromPersisted_Idempotent(t *testing.T) {
	n := NewNormalizer(nil)
	rec := n.ToPersisted(wellFormedOrder(), "u1")

	first := n.FromPersisted(rec)
	second := n.FromPersisted(rec)

	assert.Equal(t, first, second)
}

func TestFromPersisted_CorruptionIsolation(t *testing.T) {
	n := NewNormalizer(nil)

	rec := PersistedRecord{
		ID:              "ORD-CORRUPT",
		RetailerID:      "ret-1",
		Status:          "pending",
		TotalAmount:     amount(10),
		Items:           "{not valid json",
		ShippingAddress: strptr(`{"line1":"123 Main St","city":"Austin","postal_code":"78701","country":"US"}`),
		Metadata:        strptr(`{"source":"import"}`),
		CreatedBy:       "u1",
	}

	o := n.FromPersisted(rec)

	// The corrupt items blob degrades to an empty sequence only; the valid
	// address and metadata still come through.
	assert.Empty(t, o.Items)
	require.NotNil(t, o.ShippingAddress)
	assert.Equal(t, "123 Main St", o.ShippingAddress.Line1)
	assert.Equal(t, map[string]any{"source": "import"}, o.Metadata)
}

func TestFromPersisted_EveryBlobCorrupt(t *testing.T) {
	n := NewNormalizer(nil)

	rec := PersistedRecord{
		ID:              "ORD-WRECK",
		RetailerID:      "ret-1",
		Status:          "pending",
		OrderAmount:     amount(3),
		Items:           "][",
		ShippingAddress: strptr("<html>"),
		BillingAddress:  strptr("null-ish"),
		Metadata:        strptr("{{"),
		CreatedBy:       "u1",
	}

	o := n.FromPersisted(rec)

	assert.Equal(t, "ORD-WRECK", o.ID)
	assert.Empty(t, o.Items)
	assert.Nil(t, o.ShippingAddress)
	assert.Nil(t, o.BillingAddress)
	assert.Equal(t, map[string]any{}, o.Metadata)
	assert.True(t, decimal.NewFromInt(3).Equal(o.Total()), "legacy amount column still honored")
}

func TestFromPersisted_AbsentBlobs(t *testing.T) {
	n := NewNormalizer(nil)

	o := n.FromPersisted(PersistedRecord{
		ID:         "ORD-SPARSE",
		RetailerID: "ret-1",
		Status:     "draft",
		CreatedBy:  "u1",
	})

	assert.NotNil(t, o.Items)
	assert.Empty(t, o.Items)
	assert.Nil(t, o.ShippingAddress)
	assert.Nil(t, o.BillingAddress)
	assert.NotNil(t, o.Metadata)
	assert.Empty(t, o.Metadata)
	assert.Empty(t, o.LocationID)
	assert.Empty(t, o.CustomerID)
}

func TestPersistedRecord_IsLegacy(t *testing.T) {
	assert.True(t, PersistedRecord{OrderAmount: amount(5)}.IsLegacy())
	assert.False(t, PersistedRecord{TotalAmount: amount(5)}.IsLegacy())
	assert.False(t, PersistedRecord{TotalAmount: amount(5), OrderAmount: amount(5)}.IsLegacy())
	assert.False(t, PersistedRecord{}.IsLegacy())
}
