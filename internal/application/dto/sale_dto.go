package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea del carrito del PDV.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest cierre de una venta en el PDV.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"` // dinheiro | cartao | pix
}

// SaleLineDTO línea confirmada con el stock restante.
type SaleLineDTO struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	RemainingStock int             `json:"remaining_stock"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	TransactionID string          `json:"transaction_id"`
	PaymentMethod string          `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
	Lines         []SaleLineDTO   `json:"lines"`
	Message       string          `json:"message"`
}
