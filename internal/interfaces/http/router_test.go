package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-tracker-api/internal/application/alerts"
	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	appforecast "github.com/jhoicas/stock-tracker-api/internal/application/forecast"
	"github.com/jhoicas/stock-tracker-api/internal/application/inventory"
	"github.com/jhoicas/stock-tracker-api/internal/application/usecase"
	"github.com/jhoicas/stock-tracker-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-tracker-api/internal/interfaces/http"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre repositorios en
// memoria, con las mismas rutas que producción.
func buildTestApp() *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	itemRepo := memory.NewItemRepository()
	supplierRepo := memory.NewSupplierRepository()
	transactionRepo := memory.NewTransactionRepository()
	alertRepo := memory.NewAlertRepository()
	eventRepo := memory.NewEventRepository()
	txRunner := memory.NewTxRunner(transactionRepo, itemRepo)

	reconciler := alerts.NewReconciler(alertRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:           usecase.NewItemUseCase(itemRepo, reconciler, log),
		SupplierUC:       usecase.NewSupplierUseCase(supplierRepo),
		TransactionUC:    usecase.NewTransactionUseCase(transactionRepo),
		ApplyTransaction: inventory.NewApplyTransactionUseCase(txRunner, reconciler, log),
		AlertUC:          usecase.NewAlertUseCase(alertRepo),
		EventUC:          usecase.NewEventUseCase(eventRepo),
		ForecastUC:       appforecast.NewForecastUseCase(6, log),
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y decodifica la respuesta en out
// (out puede ser nil si solo interesa el status).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Items + Alertas
// ──────────────────────────────────────────────────────────────────────────────

// Crear un item por debajo del umbral debe dejar una alerta Low Stock
// visible en GET /alerts/.
func TestRouter_CrearItemBajoUmbralGeneraAlerta(t *testing.T) {
	app := buildTestApp()

	var item dto.ItemResponse
	resp := doJSON(t, app, http.MethodPost, "/items/", dto.CreateItemRequest{
		ItemName:          "Leche",
		Quantity:          2,
		LowStockThreshold: 5,
	}, &item)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, item.ID)

	var alertas []dto.AlertResponse
	resp = doJSON(t, app, http.MethodGet, "/alerts/", nil, &alertas)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, alertas, 1)
	assert.Equal(t, "Low Stock", alertas[0].Type)
	assert.Equal(t, "Low stock for Leche", alertas[0].Title)
	assert.Equal(t, "Only 2 left in stock.", alertas[0].Message)
	require.NotNil(t, alertas[0].ItemID)
	assert.Equal(t, item.ID, *alertas[0].ItemID)
}

func TestRouter_CrearItemSinNombreDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/items/", dto.CreateItemRequest{Quantity: 3}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_GetItemInexistenteDevuelve404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/items/no-existe", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Transactions (libro de stock)
// ──────────────────────────────────────────────────────────────────────────────

// Una venta persistida vía POST /transactions/ debe descontar stock y,
// al cruzar el umbral, generar la alerta Low Stock.
func TestRouter_VentaDescuentaStockYGeneraAlerta(t *testing.T) {
	app := buildTestApp()

	var item dto.ItemResponse
	resp := doJSON(t, app, http.MethodPost, "/items/", dto.CreateItemRequest{
		ItemName:          "Harina",
		Quantity:          10,
		LowStockThreshold: 5,
	}, &item)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var txn dto.TransactionResponse
	resp = doJSON(t, app, http.MethodPost, "/transactions/", dto.CreateTransactionRequest{
		Date:     "2026-01-10",
		Type:     "sale",
		Quantity: 6,
		ItemID:   &item.ID,
	}, &txn)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "2026-01-10", txn.Date)

	var after dto.ItemResponse
	resp = doJSON(t, app, http.MethodGet, "/items/"+item.ID, nil, &after)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, after.Quantity)

	var alertas []dto.AlertResponse
	doJSON(t, app, http.MethodGet, "/alerts/", nil, &alertas)
	require.Len(t, alertas, 1)
	assert.Equal(t, "Only 4 left in stock.", alertas[0].Message)
}

func TestRouter_TransaccionConFechaInvalidaDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/transactions/", dto.CreateTransactionRequest{
		Date: "10/01/2026",
		Type: "sale",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_EliminarTransaccionInexistenteDevuelve404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodDelete, "/transactions/no-existe", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Forecast
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ForecastDevuelveSeisValores(t *testing.T) {
	app := buildTestApp()

	var out dto.ForecastResponse
	resp := doJSON(t, app, http.MethodPost, "/api/forecast", dto.ForecastRequest{
		Product:   "Leche",
		SalesData: "10,12,13,12,15,14,16,15",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Leche", out.Product)
	assert.Len(t, out.Forecast, 6)
}

func TestRouter_ForecastHistorialCortoDevuelveCero(t *testing.T) {
	app := buildTestApp()

	var out dto.ForecastResponse
	resp := doJSON(t, app, http.MethodPost, "/api/forecast", dto.ForecastRequest{
		Product:   "Pan",
		SalesData: "7",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []float64{0}, out.Forecast)
}

func TestRouter_ForecastHistorialMalformadoDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/forecast", dto.ForecastRequest{
		Product:   "Pan",
		SalesData: "a,b,c",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Events
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CrearEventoYListar(t *testing.T) {
	app := buildTestApp()

	var ev dto.EventResponse
	resp := doJSON(t, app, http.MethodPost, "/events/", dto.CreateEventRequest{
		Title: "Inventario anual",
		Date:  "2026-02-01",
	}, &ev)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var eventos []dto.EventResponse
	resp = doJSON(t, app, http.MethodGet, "/events/", nil, &eventos)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, eventos, 1)
	assert.Equal(t, "Inventario anual", eventos[0].Title)
	assert.Equal(t, "2026-02-01", eventos[0].Date)
}

func TestRouter_CrearEventoConFechaInvalidaDevuelve400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/events/", dto.CreateEventRequest{
		Title: "Inventario anual",
		Date:  "01-02-2026",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Suppliers
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_SupplierCicloCompleto(t *testing.T) {
	app := buildTestApp()

	var sup dto.SupplierResponse
	resp := doJSON(t, app, http.MethodPost, "/suppliers/", dto.CreateSupplierRequest{
		SupplierName:  "Distribuidora Norte",
		ContactPerson: "Ana",
	}, &sup)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	nuevo := "Distribuidora Norte SAS"
	var updated dto.SupplierResponse
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/suppliers/%s", sup.ID), dto.UpdateSupplierRequest{
		SupplierName: &nuevo,
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, nuevo, updated.SupplierName)

	resp = doJSON(t, app, http.MethodDelete, "/suppliers/"+sup.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var lista []dto.SupplierResponse
	doJSON(t, app, http.MethodGet, "/suppliers/", nil, &lista)
	assert.Empty(t, lista)
}
