package entity

import "time"

// SupplierStatus situação do fornecedor.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "ativo"
	SupplierInactive SupplierStatus = "inativo"
)

// Valid reporta si el status es conocido.
func (s SupplierStatus) Valid() bool {
	return s == SupplierActive || s == SupplierInactive
}

// Supplier fornecedor cadastrado no módulo de compras.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Email     string
	Status    SupplierStatus
	CreatedAt time.Time
}
