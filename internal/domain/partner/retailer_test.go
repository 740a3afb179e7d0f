package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetailer(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		display   string
		expectErr bool
	}{
		{"valid", "acme-west", "Acme West", false},
		{"uppercase code normalized", "ACME", "Acme", false},
		{"empty code", "", "Acme", true},
		{"code starting with digit", "1acme", "Acme", true},
		{"code with spaces", "acme west", "Acme", true},
		{"empty name", "acme", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRetailer(tt.code, tt.display)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, RetailerStatusActive, r.Status)
			assert.True(t, r.IsActive())
		})
	}
}

func TestNewRetailer_NormalizesCode(t *testing.T) {
	r, err := NewRetailer("  ACME-West  ", "Acme West")
	require.NoError(t, err)
	assert.Equal(t, "acme-west", r.Code)
}

func TestRetailer_SuspendReinstate(t *testing.T) {
	r, err := NewRetailer("acme", "Acme")
	require.NoError(t, err)

	require.NoError(t, r.Suspend())
	assert.False(t, r.IsActive())
	assert.Error(t, r.Suspend())

	require.NoError(t, r.Reinstate())
	assert.True(t, r.IsActive())
	assert.Error(t, r.Reinstate())
}

func TestRetailer_UpdateContact(t *testing.T) {
	r, err := NewRetailer("acme", "Acme")
	require.NoError(t, err)

	before := r.Version
	r.UpdateContact("  Jamie Ortega ", "Jamie@Acme.com", " 555-0100 ")

	assert.Equal(t, "Jamie Ortega", r.ContactName)
	assert.Equal(t, "jamie@acme.com", r.ContactEmail)
	assert.Equal(t, "555-0100", r.Phone)
	assert.Equal(t, before+1, r.Version)
}
