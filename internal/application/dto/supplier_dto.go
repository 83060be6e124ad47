package dto

import "time"

// CreateSupplierRequest formulario "Novo Fornecedor". name y contact son obligatorios.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// UpdateSupplierStatusRequest ativa/inativa um fornecedor.
type UpdateSupplierStatusRequest struct {
	Status string `json:"status"`
}

// SupplierResponse salida de un fornecedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
