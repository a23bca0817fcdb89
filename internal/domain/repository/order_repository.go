package repository

import "github.com/jhoicas/food-order-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	// Create asigna el ID desde la secuencia del repositorio y lo devuelve en el pedido.
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByOwner(owner string) ([]*entity.Order, error)
	List() ([]*entity.Order, error)
	// UpdateStatus devuelve domain.ErrOrderNotFound si el pedido no existe.
	UpdateStatus(id string, status entity.OrderStatus) (*entity.Order, error)
}
