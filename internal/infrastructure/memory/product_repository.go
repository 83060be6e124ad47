package memory

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s    *Store
	inTx bool
}

// NewProductRepository construye el repositorio sobre el almacén compartido.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create agrega el producto al final de la lista.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(r.inTx, func() error {
		if r.indexOf(product.ID) >= 0 {
			return domain.ErrDuplicate
		}
		r.s.products = append(r.s.products, *product)
		return nil
	})
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.Product
	r.s.readLocked(r.inTx, func() {
		if i := r.indexOf(id); i >= 0 {
			p := r.s.products[i]
			out = &p
		}
	})
	return out, nil
}

// List devuelve copias en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*entity.Product
	r.s.readLocked(r.inTx, func() {
		out = make([]*entity.Product, 0, len(r.s.products))
		for i := range r.s.products {
			p := r.s.products[i]
			out = append(out, &p)
		}
	})
	return out, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(r.inTx, func() error {
		i := r.indexOf(product.ID)
		if i < 0 {
			return domain.ErrNotFound
		}
		r.s.products[i] = *product
		return nil
	})
}

// Delete elimina el producto conservando el orden del resto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(r.inTx, func() error {
		i := r.indexOf(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		r.s.products = append(r.s.products[:i:i], r.s.products[i+1:]...)
		return nil
	})
}

// Count número de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int
	r.s.readLocked(r.inTx, func() { n = len(r.s.products) })
	return n, nil
}

func (r *ProductRepo) indexOf(id string) int {
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			return i
		}
	}
	return -1
}
