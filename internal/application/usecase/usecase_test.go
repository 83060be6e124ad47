package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/application/demo"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
)

// seededStore almacén en memoria con la demo cargada.
func seededStore(t *testing.T) (*memory.Store, demo.Repositories) {
	t.Helper()
	store := memory.NewStore()
	repos := demo.Repositories{
		Products:       memory.NewProductRepository(store),
		Suppliers:      memory.NewSupplierRepository(store),
		PurchaseOrders: memory.NewPurchaseOrderRepository(store),
		Transactions:   memory.NewTransactionRepository(store),
	}
	_, err := demo.Seed(context.Background(), repos)
	require.NoError(t, err)
	return store, repos
}

// seededRepos repositorios en memoria con la demo cargada.
func seededRepos(t *testing.T) demo.Repositories {
	t.Helper()
	_, repos := seededStore(t)
	return repos
}

// seededProducts caso de uso de produtos sobre la demo.
func seededProducts(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store, repos := seededStore(t)
	return usecase.NewProductUseCase(repos.Products, memory.NewTxRunner(store))
}
