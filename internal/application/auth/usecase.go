package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/identity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
	"github.com/jhoicas/food-order-api/pkg/jwt"
	"github.com/jhoicas/food-order-api/pkg/metrics"
)

// AuthUseCase casos de uso de identidad: registro, login, logout y whoAmI.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	gate        *Gate
}

// NewAuthUseCase construye el caso de uso de auth sobre el mismo gate que usa el middleware.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, gate *Gate) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, gate: gate}
}

// RegisterUser crea un usuario. El rol es admin solo para el username "admin".
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username, err := identity.ValidateForAuth(in.Username)
	if err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}
	user := entity.User{Username: username, Role: entity.RoleFor(username)}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario registrado")
	return &dto.UserResponse{Username: user.Username, Role: user.Role}, nil
}

// Login abre una sesión nueva para un usuario existente y devuelve su token firmado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	out, err := uc.login(in)
	if err != nil {
		metrics.Logins.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}
	metrics.Logins.WithLabelValues("ok").Inc()
	return out, nil
}

func (uc *AuthUseCase) login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username, err := identity.ValidateForAuth(in.Username)
	if errors.Is(err, domain.ErrForbiddenUsername) {
		return nil, domain.ErrAuthForbidden
	}
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	session := entity.Session{
		Token:     uuid.NewString(),
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	token, err := jwt.Generate(uc.gate.tokenCfg.Secret, session.Token, uc.gate.tokenCfg.Issuer, uc.gate.tokenCfg.TTLMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: user.Username, Role: user.Role}, nil
}

// Logout cierra la sesión del token si existe. Idempotente.
func (uc *AuthUseCase) Logout(token string) error {
	sid := uc.gate.sessionID(token)
	if sid == "" {
		return nil
	}
	return uc.sessionRepo.Delete(sid)
}

// WhoAmI nunca falla: cualquier problema con el token se reporta como sesión cerrada.
func (uc *AuthUseCase) WhoAmI(token string) dto.SessionResponse {
	id, err := uc.gate.Authenticate(token)
	if err != nil {
		return dto.SessionResponse{LoggedIn: false}
	}
	return dto.SessionResponse{LoggedIn: true, Username: id.Username, Role: id.Role}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrAuthForbidden),
		errors.Is(err, domain.ErrUserNotFound):
		return err.Error()
	default:
		return "error"
	}
}
