package repository

import "github.com/jhoicas/stock-tracker-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert (DIP).
// GetByItemAndType devuelve la primera alerta que coincida con (item_id, type),
// o nil si no existe; es la consulta que usa la reconciliación.
type AlertRepository interface {
	Create(alert *entity.Alert) error
	GetByID(id string) (*entity.Alert, error)
	GetByItemAndType(itemID, alertType string) (*entity.Alert, error)
	List() ([]*entity.Alert, error)
	Delete(id string) error
}
