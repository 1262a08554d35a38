package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-tracker-api/internal/application/alerts"
	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

// ItemUseCase casos de uso CRUD para items. Toda mutación que pueda cambiar
// cantidad o fecha de vencimiento dispara la reconciliación de alertas una
// vez confirmada la escritura primaria.
type ItemUseCase struct {
	repo       repository.ItemRepository
	reconciler *alerts.Reconciler
	log        *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, reconciler *alerts.Reconciler, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, reconciler: reconciler, log: log}
}

// Create crea un item y reconcilia sus alertas.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	lastRestocked, err := dto.ParseDatePtr(in.LastRestocked)
	if err != nil {
		return nil, err
	}
	expiryDate, err := dto.ParseDatePtr(in.ExpiryDate)
	if err != nil {
		return nil, err
	}

	item := &entity.Item{
		ID:                uuid.New().String(),
		ItemName:          in.ItemName,
		Category:          in.Category,
		Quantity:          in.Quantity,
		Unit:              in.Unit,
		LastRestocked:     lastRestocked,
		ExpiryDate:        expiryDate,
		LowStockThreshold: in.LowStockThreshold,
		SupplierID:        in.SupplierID,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}

	uc.reconcile(item)
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID (nil si no existe).
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List devuelve todos los items.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// Update aplica solo los campos presentes y reconcilia las alertas.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.LastRestocked != nil {
		lastRestocked, err := dto.ParseDatePtr(in.LastRestocked)
		if err != nil {
			return nil, err
		}
		item.LastRestocked = lastRestocked
	}
	if in.ExpiryDate != nil {
		expiryDate, err := dto.ParseDatePtr(in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		item.ExpiryDate = expiryDate
	}
	if in.LowStockThreshold != nil {
		item.LowStockThreshold = *in.LowStockThreshold
	}
	if in.SupplierID != nil {
		item.SupplierID = in.SupplierID
	}

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}

	uc.reconcile(item)
	return toItemResponse(item), nil
}

// Delete elimina el item. No hay limpieza en cascada de alertas ni
// transacciones asociadas.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// reconcile dispara el motor de alertas; un fallo aquí no revierte la
// mutación ya confirmada, solo se registra.
func (uc *ItemUseCase) reconcile(item *entity.Item) {
	if err := uc.reconciler.Reconcile(item, time.Now()); err != nil {
		uc.log.Warn().Err(err).Str("item_id", item.ID).
			Msg("reconciliación de alertas falló tras mutar el item")
	}
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                item.ID,
		ItemName:          item.ItemName,
		Category:          item.Category,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		LastRestocked:     dto.FormatDatePtr(item.LastRestocked),
		ExpiryDate:        dto.FormatDatePtr(item.ExpiryDate),
		LowStockThreshold: item.LowStockThreshold,
		SupplierID:        item.SupplierID,
	}
}
