package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest "Nova Transação". description y amount (≠ 0) son obligatorios.
// Si type está vacío se infiere del signo de amount.
type CreateTransactionRequest struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD, vacío = hoy
	Category    string          `json:"category"`
	Status      string          `json:"status"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MonthlyFinanceDTO un punto de la serie receitas vs despesas.
type MonthlyFinanceDTO struct {
	Key     string          `json:"key"`   // 2024-01
	Month   string          `json:"month"` // Jan
	Receita decimal.Decimal `json:"receita"`
	Despesa decimal.Decimal `json:"despesa"`
	Lucro   decimal.Decimal `json:"lucro"`
}

// ExpenseShareDTO fatia da distribuição de despesas.
type ExpenseShareDTO struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
	Percent  decimal.Decimal `json:"percent"`
}

// FinanceSummaryDTO página Financeiro.
type FinanceSummaryDTO struct {
	Period              string                `json:"period"` // último mês com dados, ex: 2024-01
	Revenue             decimal.Decimal       `json:"revenue"`
	Expenses            decimal.Decimal       `json:"expenses"`
	NetProfit           decimal.Decimal       `json:"net_profit"`
	ProfitMargin        decimal.Decimal       `json:"profit_margin"`
	CashBalance         decimal.Decimal       `json:"cash_balance"`
	Months              []MonthlyFinanceDTO   `json:"months"`
	ExpenseDistribution []ExpenseShareDTO     `json:"expense_distribution"`
	Recent              []TransactionResponse `json:"recent"`
}
