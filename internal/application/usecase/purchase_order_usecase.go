package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

// PurchaseOrderUseCase pedidos de compra. El nombre del fornecedor se copia al crear el pedido.
type PurchaseOrderUseCase struct {
	orders    repository.PurchaseOrderRepository
	suppliers repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(orders repository.PurchaseOrderRepository, suppliers repository.SupplierRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{orders: orders, suppliers: suppliers}
}

// Create valida el formulario, resuelve el fornecedor y agrega el pedido como pendente.
// Con un fornecedor desconocido no se agrega nada (ErrSupplierNotFound).
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	supplierID := strings.TrimSpace(in.SupplierID)
	rawDate := strings.TrimSpace(in.Date)
	if supplierID == "" || rawDate == "" {
		return nil, domain.NewValidationError("Por favor, preencha pelo menos o fornecedor e a data.")
	}
	date, err := time.Parse(dto.DateLayout, rawDate)
	if err != nil {
		return nil, domain.NewValidationError("Data do pedido inválida, use AAAA-MM-DD.")
	}
	var delivery *time.Time
	if raw := strings.TrimSpace(in.ExpectedDelivery); raw != "" {
		d, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return nil, domain.NewValidationError("Previsão de entrega inválida, use AAAA-MM-DD.")
		}
		if d.Before(date) {
			return nil, domain.NewValidationError("A previsão de entrega não pode ser anterior à data do pedido.")
		}
		delivery = &d
	}
	if in.Total.IsNegative() || in.Items < 0 {
		return nil, domain.NewValidationError("Valor total e itens não podem ser negativos.")
	}

	supplier, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}

	now := time.Now().UTC()
	order := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		SupplierID:       supplier.ID,
		SupplierName:     supplier.Name,
		Date:             date,
		ExpectedDelivery: delivery,
		Total:            in.Total,
		Status:           entity.OrderPending,
		Items:            in.Items,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	out := toPurchaseOrderResponse(order)
	return &out, nil
}

// GetByID obtiene un pedido; ErrNotFound si no existe.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	out := toPurchaseOrderResponse(order)
	return &out, nil
}

// List pedidos en orden de creación.
func (uc *PurchaseOrderUseCase) List(ctx context.Context) ([]dto.PurchaseOrderResponse, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toPurchaseOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus aplica una transición válida (pendente→aprovado|cancelado, aprovado→entregue|cancelado).
func (uc *PurchaseOrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.PurchaseOrderResponse, error) {
	next := entity.OrderStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	switch next {
	case entity.OrderPending, entity.OrderApproved, entity.OrderDelivered, entity.OrderCancelled:
	default:
		return nil, domain.NewValidationError("Status inválido: use pendente, aprovado, entregue ou cancelado.")
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next
	out := toPurchaseOrderResponse(order)
	return &out, nil
}

// Metrics total de pedidos, pendentes y valor total.
func (uc *PurchaseOrderUseCase) Metrics(ctx context.Context) (*dto.PurchaseMetricsDTO, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return purchaseMetrics(orders), nil
}

func purchaseMetrics(orders []*entity.PurchaseOrder) *dto.PurchaseMetricsDTO {
	out := &dto.PurchaseMetricsDTO{TotalOrders: len(orders), TotalValue: decimal.Zero}
	for _, o := range orders {
		if o.Status == entity.OrderPending {
			out.PendingOrders++
		}
		out.TotalValue = out.TotalValue.Add(o.Total)
	}
	return out
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	out := dto.PurchaseOrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Date:         o.Date.Format(dto.DateLayout),
		Total:        o.Total,
		Status:       string(o.Status),
		Items:        o.Items,
		CreatedAt:    o.CreatedAt,
	}
	if o.ExpectedDelivery != nil {
		out.ExpectedDelivery = o.ExpectedDelivery.Format(dto.DateLayout)
	}
	return out
}
