package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción nueva.
func (r *TransactionRepo) Create(txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, description, amount, quantity, type, category, status, item_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.Date, txn.Description, txn.Amount, txn.Quantity,
		txn.Type, txn.Category, txn.Status, txn.ItemID,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID (nil si no existe).
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, date, description, amount, quantity, type, category, status, item_id
		FROM transactions WHERE id = $1`
	var txn entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&txn.ID, &txn.Date, &txn.Description, &txn.Amount, &txn.Quantity,
		&txn.Type, &txn.Category, &txn.Status, &txn.ItemID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &txn, nil
}

// List devuelve todas las transacciones, más recientes primero.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	query := `
		SELECT id, date, description, amount, quantity, type, category, status, item_id
		FROM transactions ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var txn entity.Transaction
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Description, &txn.Amount, &txn.Quantity,
			&txn.Type, &txn.Category, &txn.Status, &txn.ItemID); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &txn)
	}
	return list, rows.Err()
}

// Delete elimina una transacción por ID. No revierte su efecto de stock.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
