package claim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaim(t *testing.T) {
	retailerID := uuid.New()

	tests := []struct {
		name      string
		retailer  uuid.UUID
		orderID   string
		reason    string
		expectErr bool
	}{
		{"valid", retailerID, "ORD-01H", "damaged in transit", false},
		{"nil retailer", uuid.Nil, "ORD-01H", "damaged", true},
		{"empty order", retailerID, "  ", "damaged", true},
		{"empty reason", retailerID, "ORD-01H", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClaim(tt.retailer, tt.orderID, tt.reason)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusSubmitted, c.Status)
			assert.True(t, c.IsOpen())
		})
	}
}

func TestClaim_Workflow(t *testing.T) {
	c, err := NewClaim(uuid.New(), "ORD-01H", "wrong item shipped")
	require.NoError(t, err)

	// cannot approve before review
	assert.Error(t, c.Approve())

	require.NoError(t, c.StartReview())
	assert.Equal(t, StatusInReview, c.Status)

	require.NoError(t, c.Approve())
	assert.Equal(t, StatusApproved, c.Status)

	// resolution note required
	assert.Error(t, c.Resolve("  "))
	require.NoError(t, c.Resolve("replacement shipped"))
	assert.Equal(t, StatusResolved, c.Status)
	assert.False(t, c.IsOpen())
	require.NotNil(t, c.ResolvedAt)

	// resolved claims are terminal
	assert.Error(t, c.StartReview())
	assert.Error(t, c.Resolve("again"))
}

func TestClaim_DenyPath(t *testing.T) {
	c, err := NewClaim(uuid.New(), "ORD-01H", "buyer remorse")
	require.NoError(t, err)

	require.NoError(t, c.StartReview())
	require.NoError(t, c.Deny())
	assert.Equal(t, StatusDenied, c.Status)

	require.NoError(t, c.Resolve("outside warranty window"))
	assert.Equal(t, "outside warranty window", c.Resolution)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusSubmitted.CanTransitionTo(StatusInReview))
	assert.False(t, StatusSubmitted.CanTransitionTo(StatusApproved))
	assert.True(t, StatusInReview.CanTransitionTo(StatusDenied))
	assert.False(t, StatusResolved.CanTransitionTo(StatusInReview))
	assert.False(t, Status("bogus").CanTransitionTo(StatusInReview))
	assert.False(t, Status("bogus").IsValid())
}
