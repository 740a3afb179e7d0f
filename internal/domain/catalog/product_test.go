package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivrelife/nexus/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("  chair-01 ", " Recliner ", "seating")
	require.NoError(t, err)
	assert.Equal(t, "CHAIR-01", p.SKU)
	assert.Equal(t, "Recliner", p.Name)
	assert.Equal(t, ProductStatusActive, p.Status)

	_, err = NewProduct("", "Recliner", "")
	assert.Error(t, err)

	_, err = NewProduct("CHAIR-01", "  ", "")
	assert.Error(t, err)
}

func TestProduct_AddVariant(t *testing.T) {
	p, err := NewProduct("CHAIR-01", "Recliner", "seating")
	require.NoError(t, err)

	v, err := p.AddVariant("chair-01-blk", "Black", decimal.NewFromFloat(499.99))
	require.NoError(t, err)
	assert.Equal(t, "CHAIR-01-BLK", v.SKU)
	assert.True(t, v.IsActive)

	_, err = p.AddVariant("CHAIR-01-BLK", "Black again", decimal.NewFromInt(1))
	assert.Error(t, err)

	_, err = p.AddVariant("CHAIR-01-RED", "Red", decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestProduct_Reprice(t *testing.T) {
	p, err := NewProduct("CHAIR-01", "Recliner", "seating")
	require.NoError(t, err)
	_, err = p.AddVariant("CHAIR-01-BLK", "Black", decimal.NewFromInt(500))
	require.NoError(t, err)

	require.NoError(t, p.Reprice("chair-01-blk", decimal.NewFromInt(450)))
	assert.True(t, p.Variants[0].UnitPrice.Equal(decimal.NewFromInt(450)))

	assert.ErrorIs(t, p.Reprice("NOPE", decimal.NewFromInt(1)), shared.ErrNotFound)
	assert.Error(t, p.Reprice("CHAIR-01-BLK", decimal.NewFromInt(-5)))
}

func TestProduct_RetireVariant(t *testing.T) {
	p, err := NewProduct("CHAIR-01", "Recliner", "seating")
	require.NoError(t, err)
	_, err = p.AddVariant("CHAIR-01-BLK", "Black", decimal.NewFromInt(500))
	require.NoError(t, err)
	_, err = p.AddVariant("CHAIR-01-RED", "Red", decimal.NewFromInt(520))
	require.NoError(t, err)

	require.NoError(t, p.RetireVariant("CHAIR-01-BLK"))
	assert.Error(t, p.RetireVariant("CHAIR-01-BLK"))

	active := p.ActiveVariants()
	require.Len(t, active, 1)
	assert.Equal(t, "CHAIR-01-RED", active[0].SKU)
}

func TestProduct_ArchiveRestore(t *testing.T) {
	p, err := NewProduct("CHAIR-01", "Recliner", "seating")
	require.NoError(t, err)

	require.NoError(t, p.Archive())
	assert.Error(t, p.Archive())
	require.NoError(t, p.Restore())
	assert.Error(t, p.Restore())
}
