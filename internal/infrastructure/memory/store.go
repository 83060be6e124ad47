// Package memory implementa los puertos de persistencia en memoria del proceso.
// Es el driver por defecto (DATA_DRIVER=memory) y el que usan los tests de casos de uso.
package memory

import (
	"sync"

	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
)

// Store agrupa todas las colecciones bajo un único lock para que TxRunner
// pueda ofrecer atomicidad entre repositorios.
type Store struct {
	mu           sync.RWMutex
	products     []entity.Product
	suppliers    []entity.Supplier
	orders       []entity.PurchaseOrder
	transactions []entity.Transaction
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// readLocked ejecuta fn bajo RLock salvo que el llamador ya tenga el lock (dentro de una tx).
func (s *Store) readLocked(inTx bool, fn func()) {
	if !inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) writeLocked(inTx bool, fn func() error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}

type snapshot struct {
	products     []entity.Product
	suppliers    []entity.Supplier
	orders       []entity.PurchaseOrder
	transactions []entity.Transaction
}

// snapshot requiere el lock de escritura tomado.
func (s *Store) snapshot() snapshot {
	return snapshot{
		products:     append([]entity.Product(nil), s.products...),
		suppliers:    append([]entity.Supplier(nil), s.suppliers...),
		orders:       append([]entity.PurchaseOrder(nil), s.orders...),
		transactions: append([]entity.Transaction(nil), s.transactions...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.suppliers = snap.suppliers
	s.orders = snap.orders
	s.transactions = snap.transactions
}
