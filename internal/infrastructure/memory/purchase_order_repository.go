package memory

import (
	"context"
	"time"

	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo pedidos de compra en memoria.
type PurchaseOrderRepo struct {
	s *Store
}

func NewPurchaseOrderRepository(s *Store) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{s: s}
}

func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(false, func() error {
		if r.indexOf(order.ID) >= 0 {
			return domain.ErrDuplicate
		}
		r.s.orders = append(r.s.orders, cloneOrder(order))
		return nil
	})
}

func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.PurchaseOrder
	r.s.readLocked(false, func() {
		if i := r.indexOf(id); i >= 0 {
			o := cloneOrder(&r.s.orders[i])
			out = &o
		}
	})
	return out, nil
}

func (r *PurchaseOrderRepo) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*entity.PurchaseOrder
	r.s.readLocked(false, func() {
		out = make([]*entity.PurchaseOrder, 0, len(r.s.orders))
		for i := range r.s.orders {
			o := cloneOrder(&r.s.orders[i])
			out = append(out, &o)
		}
	})
	return out, nil
}

func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(false, func() error {
		i := r.indexOf(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		r.s.orders[i].Status = status
		r.s.orders[i].UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *PurchaseOrderRepo) indexOf(id string) int {
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneOrder copia también la fecha de entrega, que es un puntero.
func cloneOrder(o *entity.PurchaseOrder) entity.PurchaseOrder {
	c := *o
	if o.ExpectedDelivery != nil {
		d := *o.ExpectedDelivery
		c.ExpectedDelivery = &d
	}
	return c
}
