package memory

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/application/pos"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ pos.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones con el lock de escritura del Store
// y restaura el snapshot previo cuando fn falla.
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			r.s.restore(snap)
			panic(p)
		}
		if err != nil {
			r.s.restore(snap)
		}
	}()

	return fn(
		&ProductRepo{s: r.s, inTx: true},
		&TransactionRepo{s: r.s, inTx: true},
	)
}
