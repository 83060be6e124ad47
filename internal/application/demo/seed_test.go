package demo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/application/demo"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
)

func TestSeed_SoloConCatalogoVacio(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := demo.Repositories{
		Products:       memory.NewProductRepository(store),
		Suppliers:      memory.NewSupplierRepository(store),
		PurchaseOrders: memory.NewPurchaseOrderRepository(store),
		Transactions:   memory.NewTransactionRepository(store),
	}

	loaded, err := demo.Seed(ctx, repos)
	require.NoError(t, err)
	assert.True(t, loaded)

	loaded, err = demo.Seed(ctx, repos)
	require.NoError(t, err)
	assert.False(t, loaded, "la segunda carga no duplica")

	n, err := repos.Products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	orders, err := repos.PurchaseOrders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, demo.ID("supplier", 1), orders[0].SupplierID)
	assert.Equal(t, "Distribuidora ABC", orders[0].SupplierName)
}

func TestID_Determinista(t *testing.T) {
	assert.Equal(t, demo.ID("product", 1), demo.ID("product", 1))
	assert.NotEqual(t, demo.ID("product", 1), demo.ID("product", 2))
}
