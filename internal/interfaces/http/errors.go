package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/domain"
)

// domainError status HTTP y mensaje legible de cada error de dominio.
type domainError struct {
	err     error
	status  int
	message string
}

var domainErrors = []domainError{
	{domain.ErrInvalidUsername, fiber.StatusBadRequest, "username debe tener 2-20 caracteres [A-Za-z0-9_]"},
	{domain.ErrForbiddenUsername, fiber.StatusForbidden, "username no permitido"},
	{domain.ErrUserExists, fiber.StatusConflict, "el username ya está registrado"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "usuario no registrado"},
	{domain.ErrAuthMissing, fiber.StatusUnauthorized, "sesión requerida"},
	{domain.ErrAuthForbidden, fiber.StatusForbidden, "usuario vetado"},
	{domain.ErrNotAdmin, fiber.StatusForbidden, "requiere rol admin"},

	{domain.ErrInvalidMenuItem, fiber.StatusBadRequest, "name, description, price y category son requeridos"},
	{domain.ErrInvalidName, fiber.StatusBadRequest, "name no puede quedar vacío"},
	{domain.ErrInvalidPrice, fiber.StatusBadRequest, "price debe ser un número positivo"},
	{domain.ErrInvalidCategory, fiber.StatusBadRequest, "category debe ser main, side, drink o dessert"},
	{domain.ErrMenuItemNotFound, fiber.StatusNotFound, "item de menú no encontrado"},

	{domain.ErrInvalidCartItems, fiber.StatusBadRequest, "items del carrito inválidos"},
	{domain.ErrInvalidOrderItems, fiber.StatusBadRequest, "items del pedido inválidos"},
	{domain.ErrOrderNotFound, fiber.StatusNotFound, "pedido no encontrado"},
	{domain.ErrInvalidStatus, fiber.StatusBadRequest, "estado desconocido"},
	{domain.ErrInvalidStatusForUser, fiber.StatusBadRequest, "solo se permite cancelar"},
	{domain.ErrCannotCancel, fiber.StatusBadRequest, "solo se cancelan pedidos pending"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "transición de estado no permitida"},
}

// writeError traduce err a status + dto.ErrorResponse. Lo no reconocido es 500 INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			return c.Status(de.status).JSON(dto.NewErrorResponse(de.err.Error(), de.message))
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse("INTERNAL", "error interno"))
}

// ErrorHandler manejador de errores de Fiber para lo que no resuelven los handlers
// (rutas inexistentes, panics recuperados, body demasiado grande).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.NewErrorResponse(codeForStatus(fe.Code), fe.Message))
	}
	return writeError(c, err)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "INVALID_BODY"
	default:
		if status >= 500 {
			return "INTERNAL"
		}
		return "HTTP_ERROR"
	}
}
