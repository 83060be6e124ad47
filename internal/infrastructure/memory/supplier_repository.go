package memory

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo fornecedores en memoria.
type SupplierRepo struct {
	s *Store
}

func NewSupplierRepository(s *Store) *SupplierRepo {
	return &SupplierRepo{s: s}
}

func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(false, func() error {
		if r.indexOf(supplier.ID) >= 0 {
			return domain.ErrDuplicate
		}
		r.s.suppliers = append(r.s.suppliers, *supplier)
		return nil
	})
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.Supplier
	r.s.readLocked(false, func() {
		if i := r.indexOf(id); i >= 0 {
			sup := r.s.suppliers[i]
			out = &sup
		}
	})
	return out, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*entity.Supplier
	r.s.readLocked(false, func() {
		out = make([]*entity.Supplier, 0, len(r.s.suppliers))
		for i := range r.s.suppliers {
			sup := r.s.suppliers[i]
			out = append(out, &sup)
		}
	})
	return out, nil
}

func (r *SupplierRepo) UpdateStatus(ctx context.Context, id string, status entity.SupplierStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(false, func() error {
		i := r.indexOf(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		r.s.suppliers[i].Status = status
		return nil
	})
}

func (r *SupplierRepo) indexOf(id string) int {
	for i := range r.s.suppliers {
		if r.s.suppliers[i].ID == id {
			return i
		}
	}
	return -1
}
