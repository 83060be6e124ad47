package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/pos"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/inventory"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/pkg/textutil"
)

const (
	msgProductRequired = "Por favor, preencha pelo menos o nome e a categoria."
	msgProductNegative = "Estoque, estoque mínimo, preço e custo não podem ser negativos."
)

// ProductUseCase casos de uso de la página de estoque.
// Update y Restock leen y escriben dentro de tx para no pisar ventas concurrentes.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   pos.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx pos.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create valida el formulario y agrega el producto al final del catálogo.
// Sin nombre o categoría no se crea nada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductCreatedResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" {
		return nil, domain.NewValidationError(msgProductRequired)
	}
	if in.Stock < 0 || in.MinStock < 0 || in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.NewValidationError(msgProductNegative)
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Stock:     in.Stock,
		MinStock:  in.MinStock,
		Price:     in.Price,
		Cost:      in.Cost,
		Supplier:  strings.TrimSpace(in.Supplier),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &dto.ProductCreatedResponse{
		Product: toProductResponse(product),
		Message: "Produto \"" + product.Name + "\" adicionado com sucesso!",
	}, nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update actualización parcial; los campos nil no se tocan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return uc.modify(ctx, id, func(product *entity.Product) error {
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			product.Category = strings.TrimSpace(*in.Category)
		}
		if product.Name == "" || product.Category == "" {
			return domain.NewValidationError(msgProductRequired)
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
		}
		if in.MinStock != nil {
			product.MinStock = *in.MinStock
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Cost != nil {
			product.Cost = *in.Cost
		}
		if in.Supplier != nil {
			product.Supplier = strings.TrimSpace(*in.Supplier)
		}
		if product.Stock < 0 || product.MinStock < 0 || product.Price.IsNegative() || product.Cost.IsNegative() {
			return domain.NewValidationError(msgProductNegative)
		}
		return nil
	})
}

// Restock suma la entrada al estoque y recalcula el custo médio ponderado.
func (uc *ProductUseCase) Restock(ctx context.Context, id string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("A quantidade de entrada deve ser maior que zero.")
	}
	if in.UnitCost.IsNegative() {
		return nil, domain.NewValidationError(msgProductNegative)
	}
	return uc.modify(ctx, id, func(product *entity.Product) error {
		product.Cost = inventory.WeightedAverageCost(product.Stock, product.Cost, in.Quantity, in.UnitCost)
		product.Stock += in.Quantity
		return nil
	})
}

// modify lee, aplica fn y guarda el producto en una única transacción.
func (uc *ProductUseCase) modify(ctx context.Context, id string, fn func(*entity.Product) error) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.TransactionRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := fn(product); err != nil {
			return err
		}
		product.UpdatedAt = time.Now().UTC()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List aplica búsqueda por nombre (sin distinguir mayúsculas ni acentos) y filtro de categoría.
// Categories siempre refleja el catálogo completo, no el filtrado.
func (uc *ProductUseCase) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(filter.Category)
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if !textutil.ContainsFold(p.Name, filter.Search) {
			continue
		}
		if category != "" && category != entity.AllCategories && p.Category != category {
			continue
		}
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items:      items,
		Total:      len(items),
		Categories: categoriesOf(products),
	}, nil
}

// Overview métricas de la página de estoque.
func (uc *ProductUseCase) Overview(ctx context.Context) (*dto.InventoryOverviewDTO, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return inventoryOverview(products), nil
}

func inventoryOverview(products []*entity.Product) *dto.InventoryOverviewDTO {
	out := &dto.InventoryOverviewDTO{
		TotalProducts: len(products),
		StockValue:    decimal.Zero,
		LowStock:      []dto.ProductResponse{},
		Categories:    categoriesOf(products),
	}
	for _, p := range products {
		out.StockValue = out.StockValue.Add(p.StockValue())
		if p.IsLowStock() {
			out.LowStock = append(out.LowStock, toProductResponse(p))
		}
	}
	out.LowStockCount = len(out.LowStock)
	return out
}

// categoriesOf devuelve "Todos" seguido de las categorías distintas en orden de aparición.
func categoriesOf(products []*entity.Product) []string {
	out := []string{entity.AllCategories}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Price:     p.Price,
		Cost:      p.Cost,
		Supplier:  p.Supplier,
		Status:    p.StockStatus(),
		LowStock:  p.IsLowStock(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
