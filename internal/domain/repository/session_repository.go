package repository

import "github.com/jhoicas/food-order-api/internal/domain/entity"

// SessionRepository define el puerto para sesiones activas.
type SessionRepository interface {
	Create(session entity.Session) error
	GetByToken(token string) (*entity.Session, error)
	// Delete es idempotente: borrar un token inexistente no es error.
	Delete(token string) error
}
