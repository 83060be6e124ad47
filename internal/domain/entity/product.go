package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas de situação de estoque exibidas na tabela de produtos.
const (
	StockStatusOut       = "Sem Estoque"
	StockStatusLow       = "Estoque Baixo"
	StockStatusAvailable = "Disponível"
)

// AllCategories es el filtro que no restringe categoría.
const AllCategories = "Todos"

// Product item do cardápio/estoque da chiparia.
type Product struct {
	ID        string
	Name      string
	Category  string
	Stock     int
	MinStock  int
	Price     decimal.Decimal // preço de venda
	Cost      decimal.Decimal // custo unitário
	Supplier  string          // nome do fornecedor, texto livre
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLowStock stock igual o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockStatus devuelve la etiqueta de situação.
func (p *Product) StockStatus() string {
	switch {
	case p.Stock == 0:
		return StockStatusOut
	case p.Stock <= p.MinStock:
		return StockStatusLow
	default:
		return StockStatusAvailable
	}
}

// StockValue stock × custo.
func (p *Product) StockValue() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Stock)))
}
