package memory

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo transações financeiras en memoria.
type TransactionRepo struct {
	s    *Store
	inTx bool
}

func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s}
}

func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.writeLocked(r.inTx, func() error {
		for i := range r.s.transactions {
			if r.s.transactions[i].ID == tx.ID {
				return domain.ErrDuplicate
			}
		}
		r.s.transactions = append(r.s.transactions, *tx)
		return nil
	})
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*entity.Transaction
	r.s.readLocked(r.inTx, func() {
		out = make([]*entity.Transaction, 0, len(r.s.transactions))
		for i := range r.s.transactions {
			t := r.s.transactions[i]
			out = append(out, &t)
		}
	})
	return out, nil
}
