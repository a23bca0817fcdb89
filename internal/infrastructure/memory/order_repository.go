package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos en memoria. Nunca se borran.
type OrderRepo struct {
	mu     sync.RWMutex
	seq    Sequence
	orders map[string]*entity.Order
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: make(map[string]*entity.Order)}
}

// Create asigna ID y guarda una copia del pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.seq.Next()
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

// ListByOwner pedidos de un usuario ordenados por ID.
func (r *OrderRepo) ListByOwner(owner string) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.Owner == owner }), nil
}

// List todos los pedidos ordenados por ID.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	return r.list(func(*entity.Order) bool { return true }), nil
}

// UpdateStatus cambia el estado y devuelve el pedido actualizado.
func (r *OrderRepo) UpdateStatus(id string, status entity.OrderStatus) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return cloneOrder(o), nil
}

func (r *OrderRepo) list(keep func(*entity.Order) bool) []*entity.Order {
	r.mu.RLock()
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b *entity.Order) int { return compareIDs(a.ID, b.ID) })
	return out
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	return &c
}
