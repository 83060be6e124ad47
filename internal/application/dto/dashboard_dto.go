package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary (página inicial).
type DashboardSummaryDTO struct {
	// Estoque
	TotalProducts int             `json:"total_products"`
	StockValue    decimal.Decimal `json:"stock_value"`
	LowStockCount int             `json:"low_stock_count"`
	LowStockNames []string        `json:"low_stock_names"`

	// Compras
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	PurchasesValue  decimal.Decimal `json:"purchases_value"`
	ActiveSuppliers int             `json:"active_suppliers"`

	// Financeiro (último mês com movimento)
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
	CashBalance  decimal.Decimal `json:"cash_balance"`

	DateLabel string `json:"date_label"` // ej: "quarta-feira, 14 de outubro de 2026"
}
