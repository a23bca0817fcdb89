// Package identity reglas de dominio sobre usernames: normalización, formato e identidades reservadas.
package identity

import (
	"regexp"
	"strings"

	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,20}$`)

// NormalizeUsername recorta espacios al inicio y al final.
func NormalizeUsername(raw string) string {
	return strings.TrimSpace(raw)
}

// IsValidUsername true si tiene entre 2 y 20 caracteres de [A-Za-z0-9_].
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// IsForbidden indica si el username es la identidad vetada.
func IsForbidden(username string) bool {
	return username == entity.ForbiddenUsername
}

// ValidateForAuth normaliza y valida un username para registro o login.
// Devuelve domain.ErrInvalidUsername o domain.ErrForbiddenUsername; el formato se evalúa primero.
func ValidateForAuth(raw string) (string, error) {
	username := NormalizeUsername(raw)
	if !IsValidUsername(username) {
		return "", domain.ErrInvalidUsername
	}
	if IsForbidden(username) {
		return "", domain.ErrForbiddenUsername
	}
	return username, nil
}
