package repository

import "github.com/jhoicas/food-order-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create falla con domain.ErrUserExists si el username ya está tomado.
	Create(user entity.User) error
	GetByUsername(username string) (*entity.User, error)
}
