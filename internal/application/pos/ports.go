package pos

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ningún cambio aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}
