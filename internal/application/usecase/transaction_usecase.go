package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/pkg/datefmt"
	"github.com/jhoicas/chipaflow-api/pkg/textutil"
)

const (
	financeMonths      = 6
	recentTransactions = 10
	defaultCategory    = "Outros"
	monthKeyLayout     = "2006-01"
)

var hundred = decimal.NewFromInt(100)

// TransactionUseCase página Financeiro: lançamentos y resumen mensual.
type TransactionUseCase struct {
	repo repository.TransactionRepository
	now  func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, now: time.Now}
}

// Create registra una transacción. El signo de amount se normaliza al tipo:
// despesa siempre negativa, receita siempre positiva.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || in.Amount.IsZero() {
		return nil, domain.NewValidationError("Por favor, preencha a descrição e um valor diferente de zero.")
	}

	var txType entity.TransactionType
	switch strings.ToLower(strings.TrimSpace(in.Type)) {
	case "":
		txType = entity.TransactionIncome
		if in.Amount.IsNegative() {
			txType = entity.TransactionExpense
		}
	case string(entity.TransactionIncome):
		txType = entity.TransactionIncome
	case string(entity.TransactionExpense):
		txType = entity.TransactionExpense
	default:
		return nil, domain.NewValidationError("Tipo inválido: use receita ou despesa.")
	}
	amount := in.Amount.Abs()
	if txType == entity.TransactionExpense {
		amount = amount.Neg()
	}

	status, err := parseTransactionStatus(in.Status)
	if err != nil {
		return nil, err
	}

	date := truncateDay(uc.now().UTC())
	if raw := strings.TrimSpace(in.Date); raw != "" {
		d, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return nil, domain.NewValidationError("Data inválida, use AAAA-MM-DD.")
		}
		date = d
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultCategory
	}

	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    category,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	out := toTransactionResponse(tx)
	return &out, nil
}

// List transacciones de la más reciente a la más antigua.
func (uc *TransactionUseCase) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	txs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// Summary resumen de la página Financeiro calculado sobre los lançamentos.
func (uc *TransactionUseCase) Summary(ctx context.Context) (*dto.FinanceSummaryDTO, error) {
	txs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return financeSummary(txs), nil
}

// financeSummary agrupa por mes. Las cifras del encabezado y la distribución de
// despesas corresponden al último mes con datos; el saldo en caixa suma sólo los concluídos.
func financeSummary(txs []*entity.Transaction) *dto.FinanceSummaryDTO {
	out := &dto.FinanceSummaryDTO{
		Revenue:             decimal.Zero,
		Expenses:            decimal.Zero,
		NetProfit:           decimal.Zero,
		ProfitMargin:        decimal.Zero,
		CashBalance:         decimal.Zero,
		Months:              []dto.MonthlyFinanceDTO{},
		ExpenseDistribution: []dto.ExpenseShareDTO{},
		Recent:              []dto.TransactionResponse{},
	}

	byMonth := make(map[string]*dto.MonthlyFinanceDTO)
	for _, t := range txs {
		if t.Status == entity.TransactionCompleted {
			out.CashBalance = out.CashBalance.Add(t.Amount)
		}
		key := t.Date.Format(monthKeyLayout)
		m, ok := byMonth[key]
		if !ok {
			m = &dto.MonthlyFinanceDTO{
				Key:     key,
				Month:   datefmt.MonthAbbrev(t.Date.Month()),
				Receita: decimal.Zero,
				Despesa: decimal.Zero,
				Lucro:   decimal.Zero,
			}
			byMonth[key] = m
		}
		if t.Type == entity.TransactionExpense {
			m.Despesa = m.Despesa.Add(t.Amount.Abs())
		} else {
			m.Receita = m.Receita.Add(t.Amount.Abs())
		}
		m.Lucro = m.Receita.Sub(m.Despesa)
	}
	if len(byMonth) == 0 {
		return out
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > financeMonths {
		keys = keys[len(keys)-financeMonths:]
	}
	for _, k := range keys {
		out.Months = append(out.Months, *byMonth[k])
	}

	latest := byMonth[keys[len(keys)-1]]
	out.Period = latest.Key
	out.Revenue = latest.Receita
	out.Expenses = latest.Despesa
	out.NetProfit = latest.Lucro
	out.ProfitMargin = percentOf(latest.Lucro, latest.Receita)
	out.ExpenseDistribution = expenseDistribution(txs, latest.Key)

	recent := append([]*entity.Transaction(nil), txs...)
	sortTransactionsDesc(recent)
	if len(recent) > recentTransactions {
		recent = recent[:recentTransactions]
	}
	for _, t := range recent {
		out.Recent = append(out.Recent, toTransactionResponse(t))
	}
	return out
}

func expenseDistribution(txs []*entity.Transaction, monthKey string) []dto.ExpenseShareDTO {
	totals := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, t := range txs {
		if t.Type != entity.TransactionExpense || t.Date.Format(monthKeyLayout) != monthKey {
			continue
		}
		v := t.Amount.Abs()
		totals[t.Category] = totals[t.Category].Add(v)
		total = total.Add(v)
	}
	out := make([]dto.ExpenseShareDTO, 0, len(totals))
	for cat, v := range totals {
		out = append(out, dto.ExpenseShareDTO{Category: cat, Value: v, Percent: percentOf(v, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// percentOf part/whole × 100 con un decimal; 0 cuando whole es 0.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(1)
}

func parseTransactionStatus(raw string) (entity.TransactionStatus, error) {
	switch textutil.Fold(strings.TrimSpace(raw)) {
	case "", "concluido":
		return entity.TransactionCompleted, nil
	case "pendente":
		return entity.TransactionPending, nil
	default:
		return "", domain.NewValidationError("Status inválido: use concluído ou pendente.")
	}
}

func sortTransactionsDesc(txs []*entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date.Format(dto.DateLayout),
		Category:    t.Category,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}
