package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

// AlertUseCase alertas manuales y consulta general. Las alertas creadas por
// esta vía llevan cualquier tipo de texto libre y persisten hasta que se
// borren explícitamente: la reconciliación automática no las toca mientras el
// tipo no sea "Low Stock" ni "Expiry".
type AlertUseCase struct {
	repo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// Create registra una alerta manual.
func (uc *AlertUseCase) Create(in dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	alert := &entity.Alert{
		ID:      uuid.New().String(),
		Type:    in.Type,
		Title:   in.Title,
		Message: in.Message,
		ItemID:  in.ItemID,
	}
	if err := uc.repo.Create(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// List devuelve todas las alertas, automáticas y manuales.
func (uc *AlertUseCase) List() ([]dto.AlertResponse, error) {
	alertList, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alertList))
	for _, a := range alertList {
		out = append(out, *toAlertResponse(a))
	}
	return out, nil
}

// Delete elimina la alerta por ID.
func (uc *AlertUseCase) Delete(id string) error {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAlertResponse(a *entity.Alert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:      a.ID,
		Type:    a.Type,
		Title:   a.Title,
		Message: a.Message,
		ItemID:  a.ItemID,
	}
}
