package memory

import (
	"slices"
	"sync"

	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo catálogo en memoria. Los IDs salen de una secuencia propia.
type MenuItemRepo struct {
	mu    sync.RWMutex
	seq   Sequence
	items map[string]entity.MenuItem
}

// NewMenuItemRepository construye el catálogo vacío.
func NewMenuItemRepository() *MenuItemRepo {
	return &MenuItemRepo{items: make(map[string]entity.MenuItem)}
}

// Create asigna ID al item y lo guarda.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.seq.Next()
	r.items[item.ID] = *item
	return nil
}

// GetByID devuelve una copia del item o nil, nil si no existe.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// Update reemplaza el item completo.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrMenuItemNotFound
	}
	r.items[item.ID] = *item
	return nil
}

// Delete borra el item. El ID no se vuelve a asignar.
func (r *MenuItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(r.items, id)
	return nil
}

// List devuelve copias de todos los items ordenados por ID.
func (r *MenuItemRepo) List() ([]*entity.MenuItem, error) {
	r.mu.RLock()
	out := make([]*entity.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		it := it
		out = append(out, &it)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b *entity.MenuItem) int { return compareIDs(a.ID, b.ID) })
	return out, nil
}
