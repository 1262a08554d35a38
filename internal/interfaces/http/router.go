package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-tracker-api/internal/application/forecast"
	"github.com/jhoicas/stock-tracker-api/internal/application/inventory"
	"github.com/jhoicas/stock-tracker-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC           *usecase.ItemUseCase
	SupplierUC       *usecase.SupplierUseCase
	TransactionUC    *usecase.TransactionUseCase
	ApplyTransaction *inventory.ApplyTransactionUseCase
	AlertUC          *usecase.AlertUseCase
	EventUC          *usecase.EventUseCase
	ForecastUC       *forecast.ForecastUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Items
	items := app.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Suppliers
	suppliers := app.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Transactions (libro de stock)
	transactions := app.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.ApplyTransaction)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Alerts
	alerts := app.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/", alertHandler.Create)
	alerts.Delete("/:id", alertHandler.Delete)

	// Events (calendario)
	events := app.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Get("/", eventHandler.List)
	events.Post("/", eventHandler.Create)
	events.Get("/:id", eventHandler.GetByID)
	events.Delete("/:id", eventHandler.Delete)

	// Forecast
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	app.Post("/api/forecast", forecastHandler.Forecast)
}
