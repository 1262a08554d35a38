package inventory

import (
	"context"

	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el registro de la transacción y
// la mutación de stock del item confirmen juntos; las alertas quedan fuera a
// propósito (se reconcilian después del commit).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
