package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de um pedido de compra.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pendente"
	OrderApproved  OrderStatus = "aprovado"
	OrderDelivered OrderStatus = "entregue"
	OrderCancelled OrderStatus = "cancelado"
)

// orderTransitions transiciones permitidas desde cada estado.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderApproved, OrderCancelled},
	OrderApproved: {OrderDelivered, OrderCancelled},
}

// CanTransitionTo indica si el pedido puede pasar al estado next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PurchaseOrder pedido de compra a um fornecedor.
// SupplierName se copia del fornecedor al crear; editar el fornecedor después no lo cambia.
type PurchaseOrder struct {
	ID               string
	SupplierID       string
	SupplierName     string
	Date             time.Time
	ExpectedDelivery *time.Time
	Total            decimal.Decimal
	Status           OrderStatus
	Items            int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
