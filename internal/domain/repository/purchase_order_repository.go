package repository

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia para pedidos de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
