package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada del formulario "Adicionar Produto". name y category son obligatorios.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Supplier string          `json:"supplier"`
}

// UpdateProductRequest actualización parcial.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
	MinStock *int             `json:"min_stock"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	Supplier *string          `json:"supplier"`
}

// RestockRequest entrada de mercadería; el custo pasa a ser el promedio ponderado.
type RestockRequest struct {
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// ProductFilter filtros de la tabla de produtos.
type ProductFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Supplier  string          `json:"supplier"`
	Status    string          `json:"status"`
	LowStock  bool            `json:"low_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductCreatedResponse producto creado más el aviso para el usuario.
type ProductCreatedResponse struct {
	Product ProductResponse `json:"product"`
	Message string          `json:"message"`
}

// ProductListResponse lista filtrada de productos y las categorías disponibles.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Categories []string          `json:"categories"`
}

// InventoryOverviewDTO tarjetas de métricas de la página de estoque.
type InventoryOverviewDTO struct {
	TotalProducts int               `json:"total_products"`
	StockValue    decimal.Decimal   `json:"stock_value"`
	LowStockCount int               `json:"low_stock_count"`
	LowStock      []ProductResponse `json:"low_stock"`
	Categories    []string          `json:"categories"`
}
