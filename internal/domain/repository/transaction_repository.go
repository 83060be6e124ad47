package repository

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
)

// TransactionRepository puerto de persistencia para transações financeiras.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	List(ctx context.Context) ([]*entity.Transaction, error)
}
