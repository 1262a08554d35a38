package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-tracker-api/internal/application/alerts"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

// ApplyTransactionUseCase es el libro de stock: persiste la transacción,
// aplica su delta de cantidad al item referenciado y dispara la
// reconciliación de alertas sobre el item posiblemente mutado.
type ApplyTransactionUseCase struct {
	txRunner   TxRunner
	reconciler *alerts.Reconciler
	log        *logger.Logger
}

// NewApplyTransactionUseCase construye el caso de uso.
func NewApplyTransactionUseCase(txRunner TxRunner, reconciler *alerts.Reconciler, log *logger.Logger) *ApplyTransactionUseCase {
	return &ApplyTransactionUseCase{txRunner: txRunner, reconciler: reconciler, log: log}
}

// ApplyTransactionInput entrada validada para aplicar una transacción.
type ApplyTransactionInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Quantity    int
	Type        string
	Category    string
	Status      string
	ItemID      *string
}

// Apply registra la transacción y ajusta el stock:
//
//   - La transacción se persiste siempre, incluso si el item referenciado no
//     existe (en ese caso no hay efecto sobre el stock y no es un error).
//   - "purchase" suma Quantity, "sale" resta (comparación case-insensitive);
//     cualquier otro tipo deja la cantidad intacta sin levantar error.
//   - No hay piso de cantidad: una venta puede dejar stock negativo.
//
// Transacción e item confirman en una sola tx de BD; la reconciliación de
// alertas corre después del commit y su fallo solo se registra, nunca
// revierte la escritura primaria.
func (uc *ApplyTransactionUseCase) Apply(ctx context.Context, in ApplyTransactionInput) (*entity.Transaction, error) {
	txn := &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Amount,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Category:    in.Category,
		Status:      in.Status,
		ItemID:      in.ItemID,
	}

	var touched *entity.Item
	err := uc.txRunner.Run(ctx, func(txnRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		if err := txnRepo.Create(txn); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		if txn.ItemID == nil {
			return nil
		}
		item, err := itemRepo.GetByID(*txn.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			// Item ausente: la transacción queda registrada igual
			return nil
		}

		delta := 0
		switch strings.ToLower(txn.Type) {
		case entity.TransactionTypePurchase:
			delta = txn.Quantity
		case entity.TransactionTypeSale:
			delta = -txn.Quantity
		}
		if delta != 0 {
			item.Quantity += delta
			if err := itemRepo.UpdateQuantity(item.ID, item.Quantity); err != nil {
				return fmt.Errorf("update item quantity: %w", err)
			}
		}
		touched = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	if touched != nil {
		if rerr := uc.reconciler.Reconcile(touched, time.Now()); rerr != nil {
			uc.log.Warn().Err(rerr).Str("item_id", touched.ID).
				Msg("reconciliación de alertas falló tras aplicar la transacción")
		}
	}
	return txn, nil
}
