// Package reports arma los relatórios de la chiparia y los entrega en PDF o planilha.
package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/pkg/datefmt"
	"github.com/jhoicas/chipaflow-api/pkg/money"
)

// Tipos de relatório.
const (
	KindFinance   = "financeiro"
	KindSales     = "vendas"
	KindInventory = "estoque"
	KindPurchases = "compras"
)

const displayDate = "02/01/2006"

type catalogEntry struct {
	kind        string
	title       string
	description string
	typ         string
	formats     []Format
}

var catalog = []catalogEntry{
	{KindFinance, "Relatório Financeiro", "Análise completa das receitas e despesas", "Financeiro", []Format{FormatPDF, FormatExcel}},
	{KindSales, "Análise de Vendas", "Performance de vendas e produtos", "Vendas", []Format{FormatExcel, FormatPDF}},
	{KindInventory, "Controle de Estoque", "Movimentação e status do inventário", "Estoque", []Format{FormatPDF, FormatExcel}},
	{KindPurchases, "Pedidos de Compra", "Pedidos e fornecedores do período", "Compras", []Format{FormatPDF, FormatExcel}},
}

// UseCase catálogo y generación de relatórios.
type UseCase struct {
	products     repository.ProductRepository
	orders       repository.PurchaseOrderRepository
	transactions repository.TransactionRepository
	finance      FinanceReader
	renderers    map[string]Renderer
	author       string
	now          func() time.Time
}

// NewUseCase construye el caso de uso. renderers se indexa por Format.Name.
func NewUseCase(
	products repository.ProductRepository,
	orders repository.PurchaseOrderRepository,
	transactions repository.TransactionRepository,
	finance FinanceReader,
	renderers map[string]Renderer,
	author string,
) *UseCase {
	return &UseCase{
		products:     products,
		orders:       orders,
		transactions: transactions,
		finance:      finance,
		renderers:    renderers,
		author:       author,
		now:          time.Now,
	}
}

// Catalog relatórios disponibles con sus formatos.
func (uc *UseCase) Catalog() []dto.ReportDTO {
	out := make([]dto.ReportDTO, 0, len(catalog))
	for _, c := range catalog {
		formats := make([]string, 0, len(c.formats))
		for _, f := range c.formats {
			if _, ok := uc.renderers[f.Name]; ok {
				formats = append(formats, f.Name)
			}
		}
		out = append(out, dto.ReportDTO{
			Kind:        c.kind,
			Title:       c.title,
			Description: c.description,
			Type:        c.typ,
			Formats:     formats,
		})
	}
	return out
}

// Generate construye el relatório kind y lo renderiza en format (pdf|excel).
// kind desconocido: domain.ErrNotFound. format no soportado: domain.ErrInvalidInput.
func (uc *UseCase) Generate(ctx context.Context, kind, format string) (*Output, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF.Name
	}

	entry, ok := findEntry(kind)
	if !ok {
		return nil, domain.ErrNotFound
	}
	var f Format
	for _, candidate := range entry.formats {
		if candidate.Name == format {
			f = candidate
		}
	}
	renderer, ok := uc.renderers[f.Name]
	if f.Name == "" || !ok {
		return nil, domain.NewValidationError("Formato inválido: use pdf ou excel.")
	}

	doc, err := uc.build(ctx, entry)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("reports: renderizar %s/%s: %w", kind, format, err)
	}
	return &Output{
		Filename:    fmt.Sprintf("relatorio-%s-%s%s", kind, doc.GeneratedAt.Format("20060102"), f.Extension),
		ContentType: f.ContentType,
		Data:        data,
	}, nil
}

func findEntry(kind string) (catalogEntry, bool) {
	for _, c := range catalog {
		if c.kind == kind {
			return c, true
		}
	}
	return catalogEntry{}, false
}

func (uc *UseCase) build(ctx context.Context, entry catalogEntry) (*Document, error) {
	doc := &Document{
		Kind:        entry.kind,
		Title:       entry.title,
		Author:      uc.author,
		GeneratedAt: uc.now(),
	}
	var err error
	switch entry.kind {
	case KindFinance:
		err = uc.buildFinance(ctx, doc)
	case KindSales:
		err = uc.buildSales(ctx, doc)
	case KindInventory:
		err = uc.buildInventory(ctx, doc)
	case KindPurchases:
		err = uc.buildPurchases(ctx, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("reports: %s: %w", entry.kind, err)
	}
	if doc.Subtitle == "" {
		doc.Subtitle = "Gerado em " + datefmt.LongDate(doc.GeneratedAt)
	}
	return doc, nil
}

func (uc *UseCase) buildFinance(ctx context.Context, doc *Document) error {
	sum, err := uc.finance.Summary(ctx)
	if err != nil {
		return err
	}
	txs, err := uc.sortedTransactions(ctx)
	if err != nil {
		return err
	}
	if sum.Period != "" {
		if period, perr := time.Parse("2006-01", sum.Period); perr == nil {
			doc.Title += " - " + datefmt.MonthYear(period)
		}
	}
	doc.Summary = []Metric{
		{"Receita do mês", money.FormatBRL(sum.Revenue)},
		{"Despesas do mês", money.FormatBRL(sum.Expenses)},
		{"Lucro líquido", money.FormatBRL(sum.NetProfit)},
		{"Margem de lucro", money.FormatPercent(sum.ProfitMargin)},
		{"Saldo em caixa", money.FormatBRL(sum.CashBalance)},
	}
	doc.Columns = []Column{
		{Title: "Data", Width: 2},
		{Title: "Descrição", Width: 4},
		{Title: "Categoria", Width: 2},
		{Title: "Status", Width: 2},
		{Title: "Valor", Width: 2, Numeric: true},
	}
	for _, t := range txs {
		doc.Rows = append(doc.Rows, []string{
			t.Date.Format(displayDate), t.Description, t.Category, string(t.Status), money.FormatBRL(t.Amount),
		})
	}
	return nil
}

func (uc *UseCase) buildSales(ctx context.Context, doc *Document) error {
	txs, err := uc.sortedTransactions(ctx)
	if err != nil {
		return err
	}
	total := decimal.Zero
	count := 0
	doc.Columns = []Column{
		{Title: "Data", Width: 2},
		{Title: "Descrição", Width: 6},
		{Title: "Status", Width: 2},
		{Title: "Valor", Width: 2, Numeric: true},
	}
	for _, t := range txs {
		if t.Type != entity.TransactionIncome || t.Category != entity.CategorySales {
			continue
		}
		count++
		total = total.Add(t.Amount)
		doc.Rows = append(doc.Rows, []string{
			t.Date.Format(displayDate), t.Description, string(t.Status), money.FormatBRL(t.Amount),
		})
	}
	ticket := decimal.Zero
	if count > 0 {
		ticket = total.Div(decimal.NewFromInt(int64(count)))
	}
	doc.Summary = []Metric{
		{"Total vendido", money.FormatBRL(total)},
		{"Lançamentos de venda", strconv.Itoa(count)},
		{"Média por lançamento", money.FormatBRL(ticket)},
	}
	return nil
}

func (uc *UseCase) buildInventory(ctx context.Context, doc *Document) error {
	products, err := uc.products.List(ctx)
	if err != nil {
		return err
	}
	value := decimal.Zero
	low := 0
	doc.Columns = []Column{
		{Title: "Produto", Width: 3},
		{Title: "Categoria", Width: 2},
		{Title: "Estoque", Width: 1, Numeric: true},
		{Title: "Mínimo", Width: 1, Numeric: true},
		{Title: "Custo", Width: 2, Numeric: true},
		{Title: "Valor", Width: 1, Numeric: true},
		{Title: "Situação", Width: 2},
	}
	for _, p := range products {
		value = value.Add(p.StockValue())
		if p.IsLowStock() {
			low++
		}
		doc.Rows = append(doc.Rows, []string{
			p.Name, p.Category, strconv.Itoa(p.Stock), strconv.Itoa(p.MinStock),
			money.FormatBRL(p.Cost), money.FormatBRL(p.StockValue()), p.StockStatus(),
		})
	}
	doc.Summary = []Metric{
		{"Total de produtos", strconv.Itoa(len(products))},
		{"Valor em estoque", money.FormatBRL(value)},
		{"Produtos com estoque baixo", strconv.Itoa(low)},
	}
	return nil
}

func (uc *UseCase) buildPurchases(ctx context.Context, doc *Document) error {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return err
	}
	total := decimal.Zero
	pending := 0
	doc.Columns = []Column{
		{Title: "Fornecedor", Width: 3},
		{Title: "Data", Width: 2},
		{Title: "Entrega", Width: 2},
		{Title: "Itens", Width: 1, Numeric: true},
		{Title: "Total", Width: 2, Numeric: true},
		{Title: "Status", Width: 2},
	}
	for _, o := range orders {
		total = total.Add(o.Total)
		if o.Status == entity.OrderPending {
			pending++
		}
		delivery := "-"
		if o.ExpectedDelivery != nil {
			delivery = o.ExpectedDelivery.Format(displayDate)
		}
		doc.Rows = append(doc.Rows, []string{
			o.SupplierName, o.Date.Format(displayDate), delivery, strconv.Itoa(o.Items),
			money.FormatBRL(o.Total), string(o.Status),
		})
	}
	doc.Summary = []Metric{
		{"Total de pedidos", strconv.Itoa(len(orders))},
		{"Pedidos pendentes", strconv.Itoa(pending)},
		{"Valor total", money.FormatBRL(total)},
	}
	return nil
}

func (uc *UseCase) sortedTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	txs, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs, nil
}
