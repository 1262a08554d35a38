package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

// EventUseCase CRUD de entradas de calendario (sin relación con inventario).
type EventUseCase struct {
	repo repository.EventRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// Create registra un evento nuevo.
func (uc *EventUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	event := &entity.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// GetByID obtiene un evento por ID (nil si no existe).
func (uc *EventUseCase) GetByID(id string) (*dto.EventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return toEventResponse(event), nil
}

// List devuelve todos los eventos.
func (uc *EventUseCase) List() ([]dto.EventResponse, error) {
	events, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, *toEventResponse(e))
	}
	return out, nil
}

// Delete elimina el evento por ID.
func (uc *EventUseCase) Delete(id string) error {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(dto.DateLayout),
	}
}
