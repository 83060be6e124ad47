package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	appanalytics "github.com/jhoicas/chipaflow-api/internal/application/analytics"
	"github.com/jhoicas/chipaflow-api/internal/application/demo"
	"github.com/jhoicas/chipaflow-api/internal/application/pos"
	"github.com/jhoicas/chipaflow-api/internal/application/reports"
	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/internal/application/system"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/chipaflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/sqlite"
	infras3 "github.com/jhoicas/chipaflow-api/internal/infrastructure/storage/s3"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/supabase"
	httpRouter "github.com/jhoicas/chipaflow-api/internal/interfaces/http"
	"github.com/jhoicas/chipaflow-api/internal/scheduler"
	"github.com/jhoicas/chipaflow-api/pkg/config"
	"github.com/jhoicas/chipaflow-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_driver", cfg.Storage.DataDriver).
		Str("settings_driver", cfg.Storage.SettingsDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
	}

	// Repositorios de datos
	var (
		productRepo     repository.ProductRepository
		supplierRepo    repository.SupplierRepository
		orderRepo       repository.PurchaseOrderRepository
		transactionRepo repository.TransactionRepository
		txRunner        pos.TxRunner
	)
	switch cfg.Storage.DataDriver {
	case "postgres":
		productRepo = postgres.NewProductRepository(pool)
		supplierRepo = postgres.NewSupplierRepository(pool)
		orderRepo = postgres.NewPurchaseOrderRepository(pool)
		transactionRepo = postgres.NewTransactionRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	default:
		store := memory.NewStore()
		productRepo = memory.NewProductRepository(store)
		supplierRepo = memory.NewSupplierRepository(store)
		orderRepo = memory.NewPurchaseOrderRepository(store)
		transactionRepo = memory.NewTransactionRepository(store)
		txRunner = memory.NewTxRunner(store)
	}

	if cfg.Storage.SeedDemo {
		seeded, err := demo.Seed(ctx, demo.Repositories{
			Products:       productRepo,
			Suppliers:      supplierRepo,
			PurchaseOrders: orderRepo,
			Transactions:   transactionRepo,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("carga de datos de demostración")
		}
		if seeded {
			log.Info().Msg("datos de demostración cargados")
		}
	}

	// Preferencias (tema, perfil, logo)
	var settingsStore repository.SettingsStore
	switch cfg.Storage.SettingsDriver {
	case "sqlite":
		sqliteStore, err := sqlite.NewSettingsStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.SQLitePath).Msg("abrir SQLite de preferencias")
		}
		defer sqliteStore.Close()
		settingsStore = sqliteStore
	case "postgres":
		settingsStore = postgres.NewSettingsStore(pool)
	default:
		settingsStore = memory.NewSettingsStore()
	}

	settingsOpts := []settings.Option{
		settings.WithLogger(log.Component("settings")),
		settings.WithDefaultLogo(cfg.Logo.DefaultAsset),
	}
	if cfg.Logo.S3Bucket != "" {
		archiver, err := infras3.NewLogoArchiver(ctx, cfg.Logo)
		if err != nil {
			log.Warn().Err(err).Msg("archivo de logos en S3 desactivado")
		} else {
			settingsOpts = append(settingsOpts, settings.WithArchiver(archiver))
		}
	}
	settingsSvc := settings.NewService(settingsStore, settingsOpts...)

	// El tema se resuelve antes de atender la primera petición.
	pref, err := settingsSvc.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar preferencias")
	}
	log.Info().Str("theme", string(pref)).Msg("preferencia de tema cargada")

	var (
		appMetrics *metrics.Metrics
		recorder   pos.SaleRecorder
	)
	if cfg.App.MetricsEnabled {
		appMetrics = metrics.New()
		recorder = appMetrics
		defer appMetrics.WatchSettings(settingsSvc)()
	}

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	purchaseUC := usecase.NewPurchaseOrderUseCase(orderRepo, supplierRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	saleUC := pos.NewSaleUseCase(txRunner, recorder, log.Component("pdv"))
	dashboardUC := appanalytics.NewDashboardUseCase(productUC, purchaseUC, supplierUC, transactionUC)

	reportsUC := reports.NewUseCase(productRepo, orderRepo, transactionRepo, transactionUC,
		map[string]reports.Renderer{
			reports.FormatPDF.Name:   infrapdf.NewReportRenderer(),
			reports.FormatExcel.Name: spreadsheet.NewRenderer(),
		},
		cfg.App.Name,
	)

	var probe system.CloudProbe
	if cfg.Supabase.Configured() {
		probe = supabase.NewClient(cfg.Supabase)
	}
	cloudCheck := system.NewCloudCheck(probe, cfg.Supabase.URL, cfg.Supabase.AnonKey != "", log.Component("system"))

	var sched *scheduler.Scheduler
	if cfg.Alerts.Cron != "" {
		sched = scheduler.New(productUC, nil, log.Component("scheduler"))
		if err := sched.Start(cfg.Alerts.Cron); err != nil {
			log.Error().Err(err).Msg("revisión de estoque desactivada")
			sched = nil
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "ChipaFlow API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpLog := log.Component("http")
	httpRouter.Router(app, httpRouter.RouterDeps{
		Settings:      settingsSvc,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		PurchaseUC:    purchaseUC,
		TransactionUC: transactionUC,
		SaleUC:        saleUC,
		DashboardUC:   dashboardUC,
		ReportsUC:     reportsUC,
		CloudCheck:    cloudCheck,
		Metrics:       appMetrics,
		Logger:        &httpLog,
		JWTSecret:     cfg.JWT.Secret,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: rutas de escritura sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
