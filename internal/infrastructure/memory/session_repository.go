package memory

import (
	"errors"
	"sync"

	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

var errDuplicateToken = errors.New("token de sesión duplicado")

// SessionRepo sesiones activas indexadas por token.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewSessionRepository construye el repositorio vacío.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]entity.Session)}
}

// Create guarda la sesión. Un token repetido es un error del generador.
func (r *SessionRepo) Create(session entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.Token]; ok {
		return errDuplicateToken
	}
	r.sessions[session.Token] = session
	return nil
}

// GetByToken devuelve nil, nil si el token no corresponde a ninguna sesión.
func (r *SessionRepo) GetByToken(token string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Delete elimina la sesión si existe.
func (r *SessionRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
