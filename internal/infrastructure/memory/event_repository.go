package memory

import (
	"sync"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepository)(nil)

// EventRepository implementación en memoria del puerto EventRepository.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string]entity.Event
}

// NewEventRepository construye el repositorio en memoria.
func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string]entity.Event)}
}

// Create guarda un evento nuevo.
func (r *EventRepository) Create(event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = *event
	return nil
}

// GetByID devuelve el evento o nil si no existe.
func (r *EventRepository) GetByID(id string) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return &event, nil
}

// List devuelve todos los eventos.
func (r *EventRepository) List() ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Event, 0, len(r.events))
	for id := range r.events {
		e := r.events[id]
		list = append(list, &e)
	}
	return list, nil
}

// Delete elimina el evento por ID.
func (r *EventRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}
