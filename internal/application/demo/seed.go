// Package demo carga el conjunto de datos de demostración de la chiparia.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

// namespace base de los IDs deterministas de la demo.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://chipaflow.app/demo"))

// ID devuelve el UUID estable de un registro de demo ("product", 1).
func ID(kind string, n int) string {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s/%d", kind, n))).String()
}

// Repositories destinos de la carga.
type Repositories struct {
	Products       repository.ProductRepository
	Suppliers      repository.SupplierRepository
	PurchaseOrders repository.PurchaseOrderRepository
	Transactions   repository.TransactionRepository
}

// Seed carga la demo sólo si no hay productos. Devuelve true si cargó algo.
func Seed(ctx context.Context, r Repositories) (bool, error) {
	n, err := r.Products.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("demo: contar productos: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	created := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

	for _, p := range Products(created) {
		if err := r.Products.Create(ctx, p); err != nil {
			return false, fmt.Errorf("demo: producto %s: %w", p.Name, err)
		}
	}
	for _, s := range Suppliers(created) {
		if err := r.Suppliers.Create(ctx, s); err != nil {
			return false, fmt.Errorf("demo: fornecedor %s: %w", s.Name, err)
		}
	}
	for _, o := range PurchaseOrders(created) {
		if err := r.PurchaseOrders.Create(ctx, o); err != nil {
			return false, fmt.Errorf("demo: pedido %s: %w", o.ID, err)
		}
	}
	for _, t := range Transactions(created) {
		if err := r.Transactions.Create(ctx, t); err != nil {
			return false, fmt.Errorf("demo: transação %s: %w", t.Description, err)
		}
	}
	return true, nil
}

// Products catálogo inicial de la página de estoque.
func Products(created time.Time) []*entity.Product {
	mk := func(n int, name, category string, stock, min int, price, cost, supplier string) *entity.Product {
		return &entity.Product{
			ID:        ID("product", n),
			Name:      name,
			Category:  category,
			Stock:     stock,
			MinStock:  min,
			Price:     decimal.RequireFromString(price),
			Cost:      decimal.RequireFromString(cost),
			Supplier:  supplier,
			CreatedAt: created.Add(time.Duration(n) * time.Minute),
			UpdatedAt: created.Add(time.Duration(n) * time.Minute),
		}
	}
	return []*entity.Product{
		mk(1, "Batata Frita Grande", "Porções", 50, 20, "15.00", "8.00", "Distribuidora ABC"),
		mk(2, "Batata Frita Média", "Porções", 45, 15, "12.00", "6.50", "Distribuidora ABC"),
		mk(3, "Refrigerante Lata", "Bebidas", 8, 20, "5.00", "2.50", "Bebidas XYZ"),
		mk(4, "Pastel de Carne", "Pastéis", 40, 15, "7.50", "4.00", "Frigorífico Local"),
		mk(5, "Molho Especial", "Acompanhamentos", 5, 10, "2.00", "0.80", "Temperos & Cia"),
	}
}

// Suppliers fornecedores iniciales, todos ativos.
func Suppliers(created time.Time) []*entity.Supplier {
	mk := func(n int, name, contact, phone, email string) *entity.Supplier {
		return &entity.Supplier{
			ID:        ID("supplier", n),
			Name:      name,
			Contact:   contact,
			Phone:     phone,
			Email:     email,
			Status:    entity.SupplierActive,
			CreatedAt: created.Add(time.Duration(n) * time.Minute),
		}
	}
	return []*entity.Supplier{
		mk(1, "Distribuidora ABC", "João Silva", "(11) 9999-9999", "joao@distribuidoraabc.com"),
		mk(2, "Frigorífico Local", "Maria Santos", "(11) 8888-8888", "maria@frigorifico.com"),
		mk(3, "Bebidas XYZ", "Pedro Costa", "(11) 7777-7777", "pedro@bebidasxyz.com"),
	}
}

// PurchaseOrders pedidos iniciales; el nombre del fornecedor ya viene copiado.
func PurchaseOrders(created time.Time) []*entity.PurchaseOrder {
	names := map[int]string{1: "Distribuidora ABC", 2: "Frigorífico Local", 3: "Bebidas XYZ"}
	mk := func(n, supplier int, date, delivery, total string, status entity.OrderStatus, items int) *entity.PurchaseOrder {
		d := day(date)
		del := day(delivery)
		return &entity.PurchaseOrder{
			ID:               ID("purchase-order", n),
			SupplierID:       ID("supplier", supplier),
			SupplierName:     names[supplier],
			Date:             d,
			ExpectedDelivery: &del,
			Total:            decimal.RequireFromString(total),
			Status:           status,
			Items:            items,
			CreatedAt:        created.Add(time.Duration(n) * time.Minute),
			UpdatedAt:        created.Add(time.Duration(n) * time.Minute),
		}
	}
	return []*entity.PurchaseOrder{
		mk(1, 1, "2024-01-05", "2024-01-08", "1500.00", entity.OrderPending, 5),
		mk(2, 2, "2024-01-04", "2024-01-07", "850.00", entity.OrderApproved, 3),
		mk(3, 3, "2024-01-03", "2024-01-06", "450.00", entity.OrderDelivered, 2),
	}
}

// Transactions lançamentos iniciales de la página Financeiro.
func Transactions(created time.Time) []*entity.Transaction {
	mk := func(n int, t entity.TransactionType, desc, amount, date, category string, status entity.TransactionStatus) *entity.Transaction {
		return &entity.Transaction{
			ID:          ID("transaction", n),
			Type:        t,
			Description: desc,
			Amount:      decimal.RequireFromString(amount),
			Date:        day(date),
			Category:    category,
			Status:      status,
			CreatedAt:   created.Add(time.Duration(n) * time.Minute),
		}
	}
	return []*entity.Transaction{
		mk(1, entity.TransactionIncome, "Vendas do dia", "3247.50", "2024-01-05", entity.CategorySales, entity.TransactionCompleted),
		mk(2, entity.TransactionExpense, "Compra de ingredientes", "-1200.00", "2024-01-05", "Fornecedores", entity.TransactionCompleted),
		mk(3, entity.TransactionExpense, "Conta de energia", "-450.00", "2024-01-04", "Utilidades", entity.TransactionPending),
		mk(4, entity.TransactionIncome, "Vendas do dia anterior", "2890.00", "2024-01-04", entity.CategorySales, entity.TransactionCompleted),
		mk(5, entity.TransactionExpense, "Aluguel", "-2000.00", "2024-01-01", "Fixos", entity.TransactionCompleted),
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
