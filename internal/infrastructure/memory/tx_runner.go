package memory

import (
	"context"

	"github.com/jhoicas/stock-tracker-api/internal/application/inventory"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner variante en memoria del runner transaccional: ejecuta el callback
// directamente sobre los repositorios, sin atomicidad real. Suficiente para
// tests unitarios del libro de stock.
type TxRunner struct {
	txns  *TransactionRepository
	items *ItemRepository
}

// NewTxRunner construye el runner con los repos en memoria.
func NewTxRunner(txns *TransactionRepository, items *ItemRepository) *TxRunner {
	return &TxRunner{txns: txns, items: items}
}

// Run ejecuta fn con los repos en memoria.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.TransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return fn(r.txns, r.items)
}
