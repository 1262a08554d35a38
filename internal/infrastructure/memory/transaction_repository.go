package memory

import (
	"sync"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository implementación en memoria del puerto TransactionRepository.
type TransactionRepository struct {
	mu    sync.RWMutex
	txns  map[string]entity.Transaction
	order []string
}

// NewTransactionRepository construye el repositorio en memoria.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{txns: make(map[string]entity.Transaction)}
}

// Create guarda una transacción nueva.
func (r *TransactionRepository) Create(txn *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns[txn.ID] = *txn
	r.order = append(r.order, txn.ID)
	return nil
}

// GetByID devuelve la transacción o nil si no existe.
func (r *TransactionRepository) GetByID(id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txn, ok := r.txns[id]
	if !ok {
		return nil, nil
	}
	return &txn, nil
}

// List devuelve todas las transacciones en orden de inserción.
func (r *TransactionRepository) List() ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Transaction, 0, len(r.txns))
	for _, id := range r.order {
		if txn, ok := r.txns[id]; ok {
			t := txn
			list = append(list, &t)
		}
	}
	return list, nil
}

// Delete elimina la transacción por ID.
func (r *TransactionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.txns, id)
	return nil
}
