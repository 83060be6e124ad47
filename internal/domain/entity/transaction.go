package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType receita ou despesa.
type TransactionType string

const (
	TransactionIncome  TransactionType = "receita"
	TransactionExpense TransactionType = "despesa"
)

// TransactionStatus situação da transação.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "concluído"
	TransactionPending   TransactionStatus = "pendente"
)

// CategorySales categoria das receitas geradas pelo PDV.
const CategorySales = "Vendas"

// Transaction movimentação financeira. Amount es negativo para despesas.
type Transaction struct {
	ID          string
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Status      TransactionStatus
	CreatedAt   time.Time
}
