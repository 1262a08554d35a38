package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-tracker-api/internal/application/alerts"
	"github.com/jhoicas/stock-tracker-api/internal/application/inventory"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/infrastructure/memory"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: repos en memoria + reconciliador real
// ──────────────────────────────────────────────────────────────────────────────

type ledgerFixture struct {
	uc     *inventory.ApplyTransactionUseCase
	items  *memory.ItemRepository
	txns   *memory.TransactionRepository
	alerts *memory.AlertRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	items := memory.NewItemRepository()
	txns := memory.NewTransactionRepository()
	alertRepo := memory.NewAlertRepository()
	rec := alerts.NewReconciler(alertRepo)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return &ledgerFixture{
		uc:     inventory.NewApplyTransactionUseCase(memory.NewTxRunner(txns, items), rec, log),
		items:  items,
		txns:   txns,
		alerts: alertRepo,
	}
}

func (f *ledgerFixture) seedItem(t *testing.T, quantity, threshold int) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:                "item-1",
		ItemName:          "Café molido",
		Quantity:          quantity,
		Unit:              "kg",
		LowStockThreshold: threshold,
	}
	require.NoError(t, f.items.Create(item))
	return item
}

func txnInput(itemID string, txnType string, quantity int) inventory.ApplyTransactionInput {
	var ref *string
	if itemID != "" {
		ref = &itemID
	}
	return inventory.ApplyTransactionInput{
		Date:        time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Description: "movimiento de prueba",
		Amount:      decimal.NewFromInt(150),
		Quantity:    quantity,
		Type:        txnType,
		Category:    "stock",
		Status:      "completed",
		ItemID:      ref,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Deltas de cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_PurchaseSumaCantidad(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 10, 2)

	txn, err := f.uc.Apply(context.Background(), txnInput("item-1", "purchase", 7))
	require.NoError(t, err)
	require.NotEmpty(t, txn.ID)

	item, err := f.items.GetByID("item-1")
	require.NoError(t, err)
	assert.Equal(t, 17, item.Quantity)
}

// El tipo se compara sin distinguir mayúsculas, como hace el origen de datos.
func TestApply_TipoCaseInsensitive(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 10, 2)

	_, err := f.uc.Apply(context.Background(), txnInput("item-1", "Purchase", 5))
	require.NoError(t, err)

	item, err := f.items.GetByID("item-1")
	require.NoError(t, err)
	assert.Equal(t, 15, item.Quantity)
}

func TestApply_SaleRestaCantidad(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 10, 2)

	_, err := f.uc.Apply(context.Background(), txnInput("item-1", "sale", 4))
	require.NoError(t, err)

	item, err := f.items.GetByID("item-1")
	require.NoError(t, err)
	assert.Equal(t, 6, item.Quantity)
}

// No hay piso de stock: una venta mayor al disponible deja cantidad negativa.
func TestApply_SalePermiteNegativo(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 3, 0)

	_, err := f.uc.Apply(context.Background(), txnInput("item-1", "sale", 10))
	require.NoError(t, err)

	item, err := f.items.GetByID("item-1")
	require.NoError(t, err)
	assert.Equal(t, -7, item.Quantity)
}

func TestApply_TipoDesconocidoNoMutaStock(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 10, 2)

	txn, err := f.uc.Apply(context.Background(), txnInput("item-1", "adjustment", 99))
	require.NoError(t, err, "un tipo no reconocido no es un error")

	item, err := f.items.GetByID("item-1")
	require.NoError(t, err)
	assert.Equal(t, 10, item.Quantity)

	// La transacción se guarda de todas formas
	stored, err := f.txns.GetByID(txn.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

// ──────────────────────────────────────────────────────────────────────────────
// Item ausente / sin referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_ItemInexistenteSeToleraEnSilencio(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.uc.Apply(context.Background(), txnInput("no-existe", "sale", 5))
	require.NoError(t, err)

	stored, err := f.txns.GetByID(txn.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la transacción debe persistir aunque el item no exista")
}

func TestApply_SinItemReferenciado(t *testing.T) {
	f := newLedgerFixture(t)

	txn, err := f.uc.Apply(context.Background(), txnInput("", "purchase", 5))
	require.NoError(t, err)
	assert.Nil(t, txn.ItemID)

	list, err := f.txns.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Encadenamiento con el motor de alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SaleDisparaAlertaDeStockBajo(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 10, 5)

	_, err := f.uc.Apply(context.Background(), txnInput("item-1", "sale", 6))
	require.NoError(t, err)

	alert, err := f.alerts.GetByItemAndType("item-1", entity.AlertTypeLowStock)
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "Only 4 left in stock.", alert.Message)
}

func TestApply_PurchaseResuelveAlertaDeStockBajo(t *testing.T) {
	f := newLedgerFixture(t)
	f.seedItem(t, 2, 5)

	// Primero la venta deja el stock bajo y crea la alerta
	_, err := f.uc.Apply(context.Background(), txnInput("item-1", "sale", 1))
	require.NoError(t, err)
	alert, err := f.alerts.GetByItemAndType("item-1", entity.AlertTypeLowStock)
	require.NoError(t, err)
	require.NotNil(t, alert)

	// La compra repone por encima del umbral y la reconciliación la elimina
	_, err = f.uc.Apply(context.Background(), txnInput("item-1", "purchase", 20))
	require.NoError(t, err)
	alert, err = f.alerts.GetByItemAndType("item-1", entity.AlertTypeLowStock)
	require.NoError(t, err)
	assert.Nil(t, alert)
}
