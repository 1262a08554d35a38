package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento nuevo.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `INSERT INTO events (id, title, description, date) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, event.Description, event.Date,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID (nil si no existe).
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `SELECT id, title, description, date FROM events WHERE id = $1`
	var e entity.Event
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// List devuelve todos los eventos ordenados por fecha.
func (r *EventRepo) List() ([]*entity.Event, error) {
	query := `SELECT id, title, description, date FROM events ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un evento por ID.
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
