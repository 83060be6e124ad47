package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/chipaflow-api/internal/application/analytics"
	"github.com/jhoicas/chipaflow-api/internal/application/pos"
	"github.com/jhoicas/chipaflow-api/internal/application/reports"
	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/internal/application/system"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Settings      *settings.Service
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	PurchaseUC    *usecase.PurchaseOrderUseCase
	TransactionUC *usecase.TransactionUseCase
	SaleUC        *pos.SaleUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportsUC     *reports.UseCase
	CloudCheck    *system.CloudCheck
	Metrics       *metrics.Metrics // nil = sin /metrics
	Logger        *zerolog.Logger  // nil = sin log de peticiones
	JWTSecret     string           // vacío = escrituras sin autenticación
}

// Router registra middlewares, rutas de la API y el catch-all 404 (al final).
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(*deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	guard := writeGuard(deps.JWTSecret)
	api := app.Group("/api")

	// Shell y preferencias
	shellHandler := NewShellHandler(deps.Settings)
	api.Get("/shell/bootstrap", shellHandler.Bootstrap)
	api.Get("/shell/navigation", shellHandler.Navigation)

	settingsGroup := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.Settings)
	settingsGroup.Get("/theme", settingsHandler.GetTheme)
	settingsGroup.Put("/theme", guarded(guard, settingsHandler.UpdateTheme)...)
	settingsGroup.Post("/theme/toggle", guarded(guard, settingsHandler.ToggleTheme)...)
	settingsGroup.Get("/profile", settingsHandler.GetProfile)
	settingsGroup.Put("/profile", guarded(guard, settingsHandler.UpdateProfile)...)
	settingsGroup.Get("/logo", settingsHandler.GetLogo)
	settingsGroup.Post("/logo", guarded(guard, settingsHandler.UploadLogo)...)
	settingsGroup.Delete("/logo", guarded(guard, settingsHandler.ResetLogo)...)

	// Estoque
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", guarded(guard, productHandler.Create)...)
	products.Get("/overview", productHandler.Overview)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", guarded(guard, productHandler.Update)...)
	products.Post("/:id/restock", guarded(guard, productHandler.Restock)...)
	products.Delete("/:id", guarded(guard, productHandler.Delete)...)

	// Compras
	purchasingHandler := NewPurchasingHandler(deps.SupplierUC, deps.PurchaseUC)
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", purchasingHandler.ListSuppliers)
	suppliers.Post("/", guarded(guard, purchasingHandler.CreateSupplier)...)
	suppliers.Patch("/:id/status", guarded(guard, purchasingHandler.UpdateSupplierStatus)...)

	orders := api.Group("/purchase-orders")
	orders.Get("/", purchasingHandler.ListOrders)
	orders.Post("/", guarded(guard, purchasingHandler.CreateOrder)...)
	orders.Get("/metrics", purchasingHandler.OrderMetrics)
	orders.Get("/:id", purchasingHandler.GetOrder)
	orders.Patch("/:id/status", guarded(guard, purchasingHandler.UpdateOrderStatus)...)

	// Financeiro
	financeHandler := NewFinanceHandler(deps.TransactionUC)
	api.Get("/transactions", financeHandler.ListTransactions)
	api.Post("/transactions", guarded(guard, financeHandler.CreateTransaction)...)
	api.Get("/finance/summary", financeHandler.Summary)

	// PDV
	pdvHandler := NewPDVHandler(deps.SaleUC)
	api.Post("/pdv/sales", guarded(guard, pdvHandler.RegisterSale)...)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Relatórios
	reportHandler := NewReportHandler(deps.ReportsUC)
	api.Get("/reports", reportHandler.Catalog)
	api.Get("/reports/:kind", reportHandler.Download)

	// Sistema
	systemHandler := NewSystemHandler(deps.CloudCheck)
	api.Get("/system/cloud-check", systemHandler.CloudCheck)

	app.Use(NotFound)
}
