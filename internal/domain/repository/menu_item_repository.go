package repository

import "github.com/jhoicas/food-order-api/internal/domain/entity"

// MenuItemRepository define el puerto de persistencia para el catálogo.
type MenuItemRepository interface {
	// Create asigna el ID desde la secuencia del repositorio y lo devuelve en el item.
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	// Delete devuelve domain.ErrMenuItemNotFound si el ID no existe.
	Delete(id string) error
	List() ([]*entity.MenuItem, error)
}
