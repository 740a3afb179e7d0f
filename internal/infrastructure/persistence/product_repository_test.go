package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivrelife/nexus/internal/domain/catalog"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

func TestGormProductRepository_SaveWithVariants(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product, err := catalog.NewProduct("SOFA-100", "Recliner Sofa", "seating")
	require.NoError(t, err)
	_, err = product.AddVariant("SOFA-100-BRN", "Brown", decimal.RequireFromString("899.00"))
	require.NoError(t, err)
	_, err = product.AddVariant("SOFA-100-GRY", "Gray", decimal.RequireFromString("949.00"))
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindBySKU(ctx, "sofa-100")
	require.NoError(t, err)
	assert.Equal(t, "Recliner Sofa", found.Name)
	require.Len(t, found.Variants, 2)
}

func TestGormProductRepository_RepriceRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product, err := catalog.NewProduct("BED-200", "Adjustable Bed", "bedroom")
	require.NoError(t, err)
	_, err = product.AddVariant("BED-200-Q", "Queen", decimal.RequireFromString("1299.00"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, product.Reprice("BED-200-Q", decimal.RequireFromString("1199.00")))
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, found.Variants, 1)
	assert.True(t, found.Variants[0].UnitPrice.Equal(decimal.RequireFromString("1199.00")))
}

func TestGormProductRepository_DeleteRemovesVariants(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product, err := catalog.NewProduct("TBL-300", "Side Table", "tables")
	require.NoError(t, err)
	_, err = product.AddVariant("TBL-300-OAK", "Oak", decimal.RequireFromString("149.00"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
}

func TestGormProductRepository_CategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	for _, spec := range []struct{ sku, name, category string }{
		{"A-1", "Armchair", "seating"},
		{"A-2", "Loveseat", "seating"},
		{"B-1", "Nightstand", "bedroom"},
	} {
		p, err := catalog.NewProduct(spec.sku, spec.name, spec.category)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
	}

	filter := shared.DefaultFilter()
	filter.Filters["category"] = "seating"
	seating, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, seating, 2)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
