package memory

import (
	"sync"

	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository construye el repositorio con el usuario admin ya provisionado.
func NewUserRepository() *UserRepo {
	return &UserRepo{
		users: map[string]entity.User{
			entity.AdminUsername: {Username: entity.AdminUsername, Role: entity.RoleAdmin},
		},
	}
}

// Create registra un usuario nuevo. Los usernames distinguen mayúsculas.
func (r *UserRepo) Create(user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUserExists
	}
	r.users[user.Username] = user
	return nil
}

// GetByUsername devuelve nil, nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
