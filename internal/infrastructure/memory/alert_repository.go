package memory

import (
	"sync"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepository)(nil)

// AlertRepository implementación en memoria del puerto AlertRepository.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts map[string]entity.Alert
	order  []string // preserva orden de inserción en List
}

// NewAlertRepository construye el repositorio en memoria.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{alerts: make(map[string]entity.Alert)}
}

// Create guarda una alerta nueva.
func (r *AlertRepository) Create(alert *entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[alert.ID] = *alert
	r.order = append(r.order, alert.ID)
	return nil
}

// GetByID devuelve la alerta o nil si no existe.
func (r *AlertRepository) GetByID(id string) (*entity.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	alert, ok := r.alerts[id]
	if !ok {
		return nil, nil
	}
	return &alert, nil
}

// GetByItemAndType devuelve la primera alerta que referencia al item con el
// tipo dado, o nil.
func (r *AlertRepository) GetByItemAndType(itemID, alertType string) (*entity.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		alert, ok := r.alerts[id]
		if !ok {
			continue
		}
		if alert.Type == alertType && alert.ItemID != nil && *alert.ItemID == itemID {
			return &alert, nil
		}
	}
	return nil, nil
}

// List devuelve todas las alertas en orden de inserción.
func (r *AlertRepository) List() ([]*entity.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Alert, 0, len(r.alerts))
	for _, id := range r.order {
		if alert, ok := r.alerts[id]; ok {
			a := alert
			list = append(list, &a)
		}
	}
	return list, nil
}

// Delete elimina la alerta por ID.
func (r *AlertRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.alerts, id)
	return nil
}
