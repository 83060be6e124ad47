package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/application/analytics"
	"github.com/jhoicas/chipaflow-api/internal/application/demo"
	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
)

func TestGetSummary_DatosDemo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := demo.Repositories{
		Products:       memory.NewProductRepository(store),
		Suppliers:      memory.NewSupplierRepository(store),
		PurchaseOrders: memory.NewPurchaseOrderRepository(store),
		Transactions:   memory.NewTransactionRepository(store),
	}
	_, err := demo.Seed(ctx, repos)
	require.NoError(t, err)

	uc := analytics.NewDashboardUseCase(
		usecase.NewProductUseCase(repos.Products, memory.NewTxRunner(store)),
		usecase.NewPurchaseOrderUseCase(repos.PurchaseOrders, repos.Suppliers),
		usecase.NewSupplierUseCase(repos.Suppliers),
		usecase.NewTransactionUseCase(repos.Transactions),
	)
	sum, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, sum.TotalProducts)
	assert.Equal(t, []string{"Refrigerante Lata", "Molho Especial"}, sum.LowStockNames)
	assert.Equal(t, 3, sum.TotalOrders)
	assert.Equal(t, 1, sum.PendingOrders)
	assert.True(t, decimal.RequireFromString("2800").Equal(sum.PurchasesValue))
	assert.Equal(t, 3, sum.ActiveSuppliers)
	assert.True(t, decimal.RequireFromString("6137.50").Equal(sum.Revenue))
	assert.NotEmpty(t, sum.DateLabel)
}

type failingFinance struct{}

func (failingFinance) Summary(context.Context) (*dto.FinanceSummaryDTO, error) {
	return nil, errors.New("db down")
}

func TestGetSummary_PropagaError(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(
		usecase.NewProductUseCase(memory.NewProductRepository(store), memory.NewTxRunner(store)),
		usecase.NewPurchaseOrderUseCase(memory.NewPurchaseOrderRepository(store), memory.NewSupplierRepository(store)),
		usecase.NewSupplierUseCase(memory.NewSupplierRepository(store)),
		failingFinance{},
	)
	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "financeiro")
}
