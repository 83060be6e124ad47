package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest formulario "Novo Pedido". supplier_id y date son obligatorios.
type CreatePurchaseOrderRequest struct {
	SupplierID       string          `json:"supplier_id"`
	Date             string          `json:"date"`              // YYYY-MM-DD
	ExpectedDelivery string          `json:"expected_delivery"` // YYYY-MM-DD, opcional
	Total            decimal.Decimal `json:"total"`
	Items            int             `json:"items"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// PurchaseOrderResponse salida de un pedido.
type PurchaseOrderResponse struct {
	ID               string          `json:"id"`
	SupplierID       string          `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name"`
	Date             string          `json:"date"`
	ExpectedDelivery string          `json:"expected_delivery,omitempty"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	Items            int             `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PurchaseMetricsDTO tarjetas del módulo de compras.
type PurchaseMetricsDTO struct {
	TotalOrders   int             `json:"total_orders"`
	PendingOrders int             `json:"pending_orders"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
