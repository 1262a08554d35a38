package repository

import "github.com/jhoicas/stock-tracker-api/internal/domain/entity"

// EventRepository define el puerto de persistencia para Event (DIP).
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	List() ([]*entity.Event, error)
	Delete(id string) error
}
