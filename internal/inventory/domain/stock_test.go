package domain

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	"github.com/wyfcoding/groceryplatform/internal/catalog/infrastructure/persistence/memory"
)

func newCatalogWith(t *testing.T, name string, stock int) catalog.ProductRepository {
	t.Helper()
	repo := memory.NewProductRepository()
	err := repo.Save(context.Background(), &catalog.Product{
		Name:     name,
		Category: "Dairy",
		Price:    decimal.NewFromInt(35),
		Stock:    stock,
	})
	require.NoError(t, err)
	return repo
}

func TestStockManager_Reserve(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 100)
	mgr := NewStockManager(repo)

	p, err := mgr.Reserve(ctx, "Milk", 10)
	require.NoError(t, err)
	assert.Equal(t, 90, p.Stock)

	stored, err := repo.GetByName(ctx, "Milk")
	require.NoError(t, err)
	assert.Equal(t, 90, stored.Stock)
}

func TestStockManager_ReserveInsufficientStockLeavesStockUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 5)
	mgr := NewStockManager(repo)

	_, err := mgr.Reserve(ctx, "Milk", 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	stored, err := repo.GetByName(ctx, "Milk")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)
}

func TestStockManager_ReserveExactStockDrainsToZero(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 5)
	mgr := NewStockManager(repo)

	p, err := mgr.Reserve(ctx, "Milk", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	_, err = mgr.Reserve(ctx, "Milk", 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestStockManager_ReserveInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 100)
	mgr := NewStockManager(repo)

	for _, qty := range []int{0, -1} {
		_, err := mgr.Reserve(ctx, "Milk", qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestStockManager_ReserveUnknownProduct(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	mgr := NewStockManager(repo)

	_, err := mgr.Reserve(ctx, "Milk", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestStockManager_ReleaseReturnsUnits(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 100)
	mgr := NewStockManager(repo)

	_, err := mgr.Reserve(ctx, "Milk", 10)
	require.NoError(t, err)
	require.NoError(t, mgr.Release(ctx, "Milk", 4))

	stored, err := repo.GetByName(ctx, "Milk")
	require.NoError(t, err)
	assert.Equal(t, 94, stored.Stock)
}

func TestStockManager_ReleaseInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 100)
	mgr := NewStockManager(repo)

	assert.ErrorIs(t, mgr.Release(ctx, "Milk", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, mgr.Release(ctx, "Milk", -3), ErrInvalidQuantity)
}

func TestStockManager_ReserveReleaseConservation(t *testing.T) {
	ctx := context.Background()
	repo := newCatalogWith(t, "Milk", 100)
	mgr := NewStockManager(repo)

	// Any interleaving of successful reserves and releases keeps
	// stock + reserved == initial.
	reserved := 0
	steps := []struct {
		reserve bool
		qty     int
	}{
		{true, 30}, {true, 20}, {false, 10}, {true, 45}, {false, 25}, {false, 60},
	}
	for _, step := range steps {
		if step.reserve {
			_, err := mgr.Reserve(ctx, "Milk", step.qty)
			require.NoError(t, err)
			reserved += step.qty
		} else {
			require.NoError(t, mgr.Release(ctx, "Milk", step.qty))
			reserved -= step.qty
		}
		stored, err := repo.GetByName(ctx, "Milk")
		require.NoError(t, err)
		assert.Equal(t, 100, stored.Stock+reserved)
	}
}
