package repository

import "github.com/jhoicas/stock-tracker-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantity(itemID string, quantity int) error
	List() ([]*entity.Item, error)
	Delete(id string) error
}
