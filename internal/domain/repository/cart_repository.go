package repository

import "github.com/jhoicas/food-order-api/internal/domain/entity"

// CartRepository define el puerto para carritos por usuario.
// No valida contenido: la lógica de merge y cantidades vive en el caso de uso.
type CartRepository interface {
	Get(username string) ([]entity.CartEntry, error)
	// Set reemplaza la lista completa; una lista vacía borra el registro.
	Set(username string, items []entity.CartEntry) error
}
