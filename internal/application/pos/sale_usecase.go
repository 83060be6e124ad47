// Package pos registra ventas del PDV: baja de stock y receita en una sola transacción.
package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/pkg/textutil"
)

// Formas de pago aceptadas.
const (
	PaymentCash = "dinheiro"
	PaymentCard = "cartao"
	PaymentPix  = "pix"
)

// SaleRecorder recibe cada venta confirmada (métricas). Opcional.
type SaleRecorder interface {
	SaleRegistered(paymentMethod string, total decimal.Decimal)
}

// SaleUseCase cierre de venta del PDV.
type SaleUseCase struct {
	tx       TxRunner
	recorder SaleRecorder
	log      zerolog.Logger
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. recorder puede ser nil.
func NewSaleUseCase(tx TxRunner, recorder SaleRecorder, log zerolog.Logger) *SaleUseCase {
	return &SaleUseCase{tx: tx, recorder: recorder, log: log, now: time.Now}
}

// Register valida el carrito y, dentro de una transacción, descuenta stock de cada
// producto y registra una receita en "Vendas" por el total. Si cualquier línea falla
// no se aplica nada.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	method, err := parsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	items, err := mergeItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	resp := &dto.SaleResponse{PaymentMethod: method, Total: decimal.Zero}

	err = uc.tx.Run(ctx, func(products repository.ProductRepository, transactions repository.TransactionRepository) error {
		lines := make([]dto.SaleLineDTO, 0, len(items))
		total := decimal.Zero
		for _, it := range items {
			p, err := products.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: produto %s", domain.ErrNotFound, it.ProductID)
			}
			if p.Stock < it.Quantity {
				return fmt.Errorf("%w: %s (disponível %d, solicitado %d)", domain.ErrInsufficientStock, p.Name, p.Stock, it.Quantity)
			}
			p.Stock -= it.Quantity
			p.UpdatedAt = now
			if err := products.Update(ctx, p); err != nil {
				return err
			}
			subtotal := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			total = total.Add(subtotal)
			lines = append(lines, dto.SaleLineDTO{
				ProductID:      p.ID,
				Name:           p.Name,
				Quantity:       it.Quantity,
				UnitPrice:      p.Price,
				Subtotal:       subtotal,
				RemainingStock: p.Stock,
			})
		}

		sale := &entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionIncome,
			Description: fmt.Sprintf("Venda PDV (%s)", method),
			Amount:      total,
			Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			Category:    entity.CategorySales,
			Status:      entity.TransactionCompleted,
			CreatedAt:   now,
		}
		if err := transactions.Create(ctx, sale); err != nil {
			return err
		}
		resp.TransactionID = sale.ID
		resp.Total = total
		resp.Lines = lines
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.Message = "Venda registrada com sucesso!"
	if uc.recorder != nil {
		uc.recorder.SaleRegistered(method, resp.Total)
	}
	uc.log.Info().
		Str("transaction_id", resp.TransactionID).
		Str("payment_method", method).
		Str("total", resp.Total.StringFixed(2)).
		Int("lines", len(resp.Lines)).
		Msg("venda registrada")
	return resp, nil
}

func parsePaymentMethod(raw string) (string, error) {
	switch textutil.Fold(strings.TrimSpace(raw)) {
	case "", PaymentCash:
		return PaymentCash, nil
	case PaymentCard:
		return PaymentCard, nil
	case PaymentPix:
		return PaymentPix, nil
	default:
		return "", domain.NewValidationError("Forma de pagamento inválida: use dinheiro, cartao ou pix.")
	}
}

// mergeItems valida el carrito y suma cantidades del mismo producto conservando el orden.
func mergeItems(items []dto.SaleItemRequest) ([]dto.SaleItemRequest, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("Adicione pelo menos um item à venda.")
	}
	out := make([]dto.SaleItemRequest, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Quantity <= 0 {
			return nil, domain.NewValidationError("Cada item precisa de um produto e quantidade maior que zero.")
		}
		if i, ok := index[id]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[id] = len(out)
		out = append(out, dto.SaleItemRequest{ProductID: id, Quantity: it.Quantity})
	}
	return out, nil
}
