package memory

import (
	"sync"

	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo carritos por username. Un carrito vacío no ocupa registro.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string][]entity.CartEntry
}

// NewCartRepository construye el repositorio vacío.
func NewCartRepository() *CartRepo {
	return &CartRepo{carts: make(map[string][]entity.CartEntry)}
}

// Get devuelve una copia del carrito; lista vacía si no hay registro.
func (r *CartRepo) Get(username string) ([]entity.CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.carts[username]
	out := make([]entity.CartEntry, len(items))
	copy(out, items)
	return out, nil
}

// Set reemplaza el carrito. Con items vacío o nil borra el registro.
func (r *CartRepo) Set(username string, items []entity.CartEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(items) == 0 {
		delete(r.carts, username)
		return nil
	}
	stored := make([]entity.CartEntry, len(items))
	copy(stored, items)
	r.carts[username] = stored
	return nil
}

// Len número de carritos guardados.
func (r *CartRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
