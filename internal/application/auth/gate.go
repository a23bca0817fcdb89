package auth

import (
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/identity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
	"github.com/jhoicas/food-order-api/pkg/jwt"
)

// TokenConfig configuración de los tokens de sesión firmados.
type TokenConfig struct {
	Secret     string
	Issuer     string
	TTLMinutes int // 0 = sin expiración
}

// Identity usuario resuelto a partir de un token.
type Identity struct {
	Username string
	Role     string
}

// IsAdmin indica si la identidad tiene rol admin.
func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

// Gate resuelve tokens de sesión en identidades. Solo lee; nunca modifica los stores.
type Gate struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokenCfg    TokenConfig
}

// NewGate construye el gate de acceso.
func NewGate(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, tokenCfg TokenConfig) *Gate {
	return &Gate{userRepo: userRepo, sessionRepo: sessionRepo, tokenCfg: tokenCfg}
}

// Authenticate resuelve token -> sesión -> usuario.
//   - domain.ErrAuthMissing   token vacío, inválido, sin sesión o sesión de un usuario inexistente.
//   - domain.ErrAuthForbidden la sesión pertenece a la identidad vetada.
func (g *Gate) Authenticate(token string) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrAuthMissing
	}
	sid, err := jwt.Parse(g.tokenCfg.Secret, token)
	if err != nil {
		return Identity{}, domain.ErrAuthMissing
	}
	session, err := g.sessionRepo.GetByToken(sid)
	if err != nil {
		return Identity{}, err
	}
	if session == nil {
		return Identity{}, domain.ErrAuthMissing
	}
	user, err := g.userRepo.GetByUsername(session.Username)
	if err != nil {
		return Identity{}, err
	}
	if user == nil {
		return Identity{}, domain.ErrAuthMissing
	}
	if identity.IsForbidden(user.Username) {
		return Identity{}, domain.ErrAuthForbidden
	}
	return Identity{Username: user.Username, Role: user.Role}, nil
}

// RequireAdmin segunda etapa sobre una identidad ya autenticada.
func RequireAdmin(id Identity) error {
	if !id.IsAdmin() {
		return domain.ErrNotAdmin
	}
	return nil
}

// sessionID extrae el ID de sesión de un token firmado; "" si no es válido.
func (g *Gate) sessionID(token string) string {
	if token == "" {
		return ""
	}
	sid, err := jwt.Parse(g.tokenCfg.Secret, token)
	if err != nil {
		return ""
	}
	return sid
}
