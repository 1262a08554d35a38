package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta nueva.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, type, title, message, item_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Type, alert.Title, alert.Message, alert.ItemID,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID (nil si no existe).
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT id, type, title, message, item_id FROM alerts WHERE id = $1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Type, &a.Title, &a.Message, &a.ItemID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// GetByItemAndType devuelve la primera alerta que referencia al item con el
// tipo dado (nil si no existe). Es la consulta de la reconciliación.
func (r *AlertRepo) GetByItemAndType(itemID, alertType string) (*entity.Alert, error) {
	query := `
		SELECT id, type, title, message, item_id
		FROM alerts WHERE item_id = $1 AND type = $2
		LIMIT 1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, itemID, alertType).Scan(
		&a.ID, &a.Type, &a.Title, &a.Message, &a.ItemID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert by item and type: %w", err)
	}
	return &a, nil
}

// List devuelve todas las alertas.
func (r *AlertRepo) List() ([]*entity.Alert, error) {
	query := `SELECT id, type, title, message, item_id FROM alerts`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Message, &a.ItemID); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una alerta por ID.
func (r *AlertRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}
