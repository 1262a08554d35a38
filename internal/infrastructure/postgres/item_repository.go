package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un item nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, item_name, category, quantity, unit, last_restocked, expiry_date, low_stock_threshold, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.Category, item.Quantity, item.Unit,
		item.LastRestocked, item.ExpiryDate, item.LowStockThreshold, item.SupplierID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID (nil si no existe).
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, item_name, category, quantity, unit, last_restocked, expiry_date, low_stock_threshold, supplier_id
		FROM items WHERE id = $1`
	var item entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Unit,
		&item.LastRestocked, &item.ExpiryDate, &item.LowStockThreshold, &item.SupplierID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// Update reemplaza los campos mutables del item.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET item_name = $2, category = $3, quantity = $4, unit = $5,
			last_restocked = $6, expiry_date = $7, low_stock_threshold = $8, supplier_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.Category, item.Quantity, item.Unit,
		item.LastRestocked, item.ExpiryDate, item.LowStockThreshold, item.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (usada por el libro de stock).
func (r *ItemRepo) UpdateQuantity(itemID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET quantity = $2 WHERE id = $1`,
		itemID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// List devuelve todos los items.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `
		SELECT id, item_name, category, quantity, unit, last_restocked, expiry_date, low_stock_threshold, supplier_id
		FROM items ORDER BY item_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Unit,
			&item.LastRestocked, &item.ExpiryDate, &item.LowStockThreshold, &item.SupplierID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Delete elimina un item por ID. Alertas y transacciones asociadas no se
// tocan (sin cascada).
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
