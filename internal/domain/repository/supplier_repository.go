package repository

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para fornecedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	UpdateStatus(ctx context.Context, id string, status entity.SupplierStatus) error
}
