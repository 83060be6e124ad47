package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

// SupplierUseCase cadastro de fornecedores (página de compras).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un fornecedor activo. name y contact son obligatorios.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	contact := strings.TrimSpace(in.Contact)
	if name == "" || contact == "" {
		return nil, domain.NewValidationError("Por favor, preencha pelo menos o nome e o contato.")
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Contact:   contact,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Status:    entity.SupplierActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	out := toSupplierResponse(supplier)
	return &out, nil
}

// List fornecedores en orden de cadastro.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// UpdateStatus ativa o inativa un fornecedor.
func (uc *SupplierUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateSupplierStatusRequest) (*dto.SupplierResponse, error) {
	status := entity.SupplierStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if !status.Valid() {
		return nil, domain.NewValidationError("Status deve ser ativo ou inativo.")
	}
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	supplier.Status = status
	out := toSupplierResponse(supplier)
	return &out, nil
}

// CountActive fornecedores con status ativo.
func (uc *SupplierUseCase) CountActive(ctx context.Context) (int, error) {
	suppliers, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range suppliers {
		if s.Status == entity.SupplierActive {
			n++
		}
	}
	return n, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Phone:     s.Phone,
		Email:     s.Email,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}
