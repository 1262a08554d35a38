package usecase

import (
	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

// TransactionUseCase consulta y borrado de transacciones. La creación no pasa
// por aquí: va por el libro de stock (inventory.ApplyTransactionUseCase),
// que además ajusta la cantidad del item.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// GetByID obtiene una transacción por ID (nil si no existe).
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}
	return ToTransactionResponse(txn), nil
}

// List devuelve todas las transacciones.
func (uc *TransactionUseCase) List() ([]dto.TransactionResponse, error) {
	txns, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, *ToTransactionResponse(txn))
	}
	return out, nil
}

// Delete elimina la transacción. No revierte el efecto de stock que tuvo al
// aplicarse.
func (uc *TransactionUseCase) Delete(id string) error {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if txn == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToTransactionResponse mapea la entidad al DTO de salida.
func ToTransactionResponse(txn *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          txn.ID,
		Date:        txn.Date.Format(dto.DateLayout),
		Description: txn.Description,
		Amount:      txn.Amount,
		Quantity:    txn.Quantity,
		Type:        txn.Type,
		Category:    txn.Category,
		Status:      txn.Status,
		ItemID:      txn.ItemID,
	}
}
