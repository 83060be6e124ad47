// Package analytics arma el resumen de la página inicial a partir de los casos de uso de cada página.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/pkg/datefmt"
)

// InventoryReader métricas de estoque.
type InventoryReader interface {
	Overview(ctx context.Context) (*dto.InventoryOverviewDTO, error)
}

// PurchasingReader métricas de compras.
type PurchasingReader interface {
	Metrics(ctx context.Context) (*dto.PurchaseMetricsDTO, error)
}

// SupplierCounter fornecedores ativos.
type SupplierCounter interface {
	CountActive(ctx context.Context) (int, error)
}

// FinanceReader resumen financeiro.
type FinanceReader interface {
	Summary(ctx context.Context) (*dto.FinanceSummaryDTO, error)
}

// DashboardUseCase genera el resumen de la página inicial.
type DashboardUseCase struct {
	inventory  InventoryReader
	purchasing PurchasingReader
	suppliers  SupplierCounter
	finance    FinanceReader
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(inventory InventoryReader, purchasing PurchasingReader, suppliers SupplierCounter, finance FinanceReader) *DashboardUseCase {
	return &DashboardUseCase{
		inventory:  inventory,
		purchasing: purchasing,
		suppliers:  suppliers,
		finance:    finance,
		now:        time.Now,
	}
}

// GetSummary consulta las cuatro fuentes en paralelo y arma el DTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type inventoryResult struct {
		ov  *dto.InventoryOverviewDTO
		err error
	}
	type purchasingResult struct {
		m   *dto.PurchaseMetricsDTO
		err error
	}
	type suppliersResult struct {
		n   int
		err error
	}
	type financeResult struct {
		s   *dto.FinanceSummaryDTO
		err error
	}

	invCh := make(chan inventoryResult, 1)
	purCh := make(chan purchasingResult, 1)
	supCh := make(chan suppliersResult, 1)
	finCh := make(chan financeResult, 1)

	go func() {
		ov, err := uc.inventory.Overview(ctx)
		invCh <- inventoryResult{ov, err}
	}()
	go func() {
		m, err := uc.purchasing.Metrics(ctx)
		purCh <- purchasingResult{m, err}
	}()
	go func() {
		n, err := uc.suppliers.CountActive(ctx)
		supCh <- suppliersResult{n, err}
	}()
	go func() {
		s, err := uc.finance.Summary(ctx)
		finCh <- financeResult{s, err}
	}()

	inv := <-invCh
	pur := <-purCh
	sup := <-supCh
	fin := <-finCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: estoque: %w", inv.err)
	}
	if pur.err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", pur.err)
	}
	if sup.err != nil {
		return nil, fmt.Errorf("dashboard: fornecedores: %w", sup.err)
	}
	if fin.err != nil {
		return nil, fmt.Errorf("dashboard: financeiro: %w", fin.err)
	}

	names := make([]string, 0, len(inv.ov.LowStock))
	for _, p := range inv.ov.LowStock {
		names = append(names, p.Name)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:   inv.ov.TotalProducts,
		StockValue:      inv.ov.StockValue.Round(2),
		LowStockCount:   inv.ov.LowStockCount,
		LowStockNames:   names,
		TotalOrders:     pur.m.TotalOrders,
		PendingOrders:   pur.m.PendingOrders,
		PurchasesValue:  pur.m.TotalValue.Round(2),
		ActiveSuppliers: sup.n,
		Revenue:         fin.s.Revenue.Round(2),
		Expenses:        fin.s.Expenses.Round(2),
		NetProfit:       fin.s.NetProfit.Round(2),
		ProfitMargin:    fin.s.ProfitMargin,
		CashBalance:     fin.s.CashBalance.Round(2),
		DateLabel:       datefmt.LongDate(uc.now()),
	}, nil
}
