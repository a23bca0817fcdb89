package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/food-order-api/internal/application/auth"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

// RequireAuth resuelve el token de sesión (cookie o Bearer) y carga username y role en c.Locals.
// Corta con 401 auth-missing o 403 auth-forbidden.
func RequireAuth(gate *auth.Gate, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := gate.Authenticate(SessionToken(c, cookieName))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalUsername, id.Username)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// SessionToken token de la cookie de sesión o, si no hay cookie, del header Authorization: Bearer.
func SessionToken(c *fiber.Ctx, cookieName string) string {
	if tok := c.Cookies(cookieName); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUsername devuelve el username del contexto (después de RequireAuth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol del contexto (después de RequireAuth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
