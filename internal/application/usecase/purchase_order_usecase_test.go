package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/application/demo"
	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
	"github.com/jhoicas/chipaflow-api/internal/domain"
)

func TestPurchaseOrderCreate_FornecedorDesconocidoNoAgrega(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	uc := usecase.NewPurchaseOrderUseCase(repos.PurchaseOrders, repos.Suppliers)

	_, err := uc.Create(ctx, dto.CreatePurchaseOrderRequest{SupplierID: "no-existe", Date: "2024-01-10"})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)

	orders, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestPurchaseOrderCreate_Validacion(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	uc := usecase.NewPurchaseOrderUseCase(repos.PurchaseOrders, repos.Suppliers)

	_, err := uc.Create(ctx, dto.CreatePurchaseOrderRequest{Date: "2024-01-10"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Por favor, preencha pelo menos o fornecedor e a data.", verr.Message)

	_, err = uc.Create(ctx, dto.CreatePurchaseOrderRequest{SupplierID: demo.ID("supplier", 1), Date: "10/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrderCreate_CopiaNombreDelFornecedor(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	uc := usecase.NewPurchaseOrderUseCase(repos.PurchaseOrders, repos.Suppliers)

	order, err := uc.Create(ctx, dto.CreatePurchaseOrderRequest{
		SupplierID:       demo.ID("supplier", 2),
		Date:             "2024-01-10",
		ExpectedDelivery: "2024-01-12",
		Total:            decimal.RequireFromString("320.00"),
		Items:            4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Frigorífico Local", order.SupplierName)
	assert.Equal(t, "pendente", order.Status)
	assert.Equal(t, "2024-01-12", order.ExpectedDelivery)

	m, err := uc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, m.TotalOrders)
	assert.Equal(t, 2, m.PendingOrders)
	assert.True(t, decimal.RequireFromString("3120.00").Equal(m.TotalValue))
}

func TestPurchaseOrderUpdateStatus_Transiciones(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)
	uc := usecase.NewPurchaseOrderUseCase(repos.PurchaseOrders, repos.Suppliers)
	pending := demo.ID("purchase-order", 1)
	delivered := demo.ID("purchase-order", 3)

	_, err := uc.UpdateStatus(ctx, pending, dto.UpdateOrderStatusRequest{Status: "entregue"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	o, err := uc.UpdateStatus(ctx, pending, dto.UpdateOrderStatusRequest{Status: "aprovado"})
	require.NoError(t, err)
	assert.Equal(t, "aprovado", o.Status)

	_, err = uc.UpdateStatus(ctx, delivered, dto.UpdateOrderStatusRequest{Status: "cancelado"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.UpdateStatus(ctx, "nope", dto.UpdateOrderStatusRequest{Status: "aprovado"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSupplierUseCase(seededRepos(t).Suppliers)

	_, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Temperos & Cia"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Por favor, preencha pelo menos o nome e o contato.", verr.Message)

	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Temperos & Cia", Contact: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ativo", s.Status)

	_, err = uc.UpdateStatus(ctx, s.ID, dto.UpdateSupplierStatusRequest{Status: "inativo"})
	require.NoError(t, err)

	n, err := uc.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = uc.UpdateStatus(ctx, s.ID, dto.UpdateSupplierStatusRequest{Status: "suspenso"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
