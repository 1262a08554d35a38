package memory

import (
	"sync"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementación en memoria del puerto SupplierRepository.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]entity.Supplier
}

// NewSupplierRepository construye el repositorio en memoria.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[string]entity.Supplier)}
}

// Create guarda un proveedor nuevo.
func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// GetByID devuelve el proveedor o nil si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	supplier, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &supplier, nil
}

// Update reemplaza el proveedor completo.
func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// List devuelve todos los proveedores.
func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Supplier, 0, len(r.suppliers))
	for id := range r.suppliers {
		s := r.suppliers[id]
		list = append(list, &s)
	}
	return list, nil
}

// Delete elimina el proveedor por ID.
func (r *SupplierRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.suppliers, id)
	return nil
}
