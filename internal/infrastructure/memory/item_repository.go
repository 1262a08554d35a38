package memory

import (
	"sync"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implementación en memoria del puerto ItemRepository,
// usada por los tests unitarios.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Item
}

// NewItemRepository construye el repositorio en memoria.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]entity.Item)}
}

// Create guarda un item nuevo.
func (r *ItemRepository) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

// GetByID devuelve una copia del item o nil si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Update reemplaza el item completo.
func (r *ItemRepository) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

// UpdateQuantity ajusta solo la cantidad.
func (r *ItemRepository) UpdateQuantity(itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil
	}
	item.Quantity = quantity
	r.items[itemID] = item
	return nil
}

// List devuelve todos los items.
func (r *ItemRepository) List() ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Item, 0, len(r.items))
	for id := range r.items {
		item := r.items[id]
		list = append(list, &item)
	}
	return list, nil
}

// Delete elimina el item por ID.
func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
