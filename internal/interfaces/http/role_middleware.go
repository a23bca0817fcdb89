package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/food-order-api/internal/application/auth"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
)

// RequireRole deja pasar solo a las identidades con alguno de los roles indicados.
// Debe usarse DESPUÉS de RequireAuth. Sin identidad en el contexto responde 401.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if GetUsername(c) == "" || role == "" {
			return writeError(c, domain.ErrAuthMissing)
		}
		if !slices.Contains(roles, role) {
			return writeError(c, domain.ErrNotAdmin)
		}
		return c.Next()
	}
}

// RequireAdmin segunda etapa del gate para rutas de administración.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUsername(c) == "" {
			return writeError(c, domain.ErrAuthMissing)
		}
		if err := auth.RequireAdmin(auth.Identity{Username: GetUsername(c), Role: GetRole(c)}); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}

// roleUserOrAdmin roles de cliente autenticado.
var roleUserOrAdmin = []string{entity.RoleUser, entity.RoleAdmin}
