package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-tracker-api/internal/application/alerts"
	appforecast "github.com/jhoicas/stock-tracker-api/internal/application/forecast"
	"github.com/jhoicas/stock-tracker-api/internal/application/inventory"
	"github.com/jhoicas/stock-tracker-api/internal/application/usecase"
	"github.com/jhoicas/stock-tracker-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-tracker-api/internal/interfaces/http"
	"github.com/jhoicas/stock-tracker-api/pkg/config"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconciler := alerts.NewReconciler(alertRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, reconciler, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo)
	eventUC := usecase.NewEventUseCase(eventRepo)
	applyTransactionUC := inventory.NewApplyTransactionUseCase(txRunner, reconciler, log)
	forecastUC := appforecast.NewForecastUseCase(cfg.Forecast.Horizon, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Tracker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:           itemUC,
		SupplierUC:       supplierUC,
		TransactionUC:    transactionUC,
		ApplyTransaction: applyTransactionUC,
		AlertUC:          alertUC,
		EventUC:          eventUC,
		ForecastUC:       forecastUC,
	})

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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
