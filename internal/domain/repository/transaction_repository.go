package repository

import "github.com/jhoicas/stock-tracker-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
// Las transacciones son inmutables: no hay Update.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
	Delete(id string) error
}
