package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El texto de cada error es el código que viaja al cliente.
var (
	// Identidad y sesión
	ErrInvalidUsername   = errors.New("invalid-username")
	ErrForbiddenUsername = errors.New("forbidden-username")
	ErrUserExists        = errors.New("user-exists")
	ErrUserNotFound      = errors.New("user-not-found")
	ErrAuthMissing       = errors.New("auth-missing")
	ErrAuthForbidden     = errors.New("auth-forbidden")
	ErrNotAdmin          = errors.New("not-admin")

	// Catálogo
	ErrInvalidMenuItem  = errors.New("invalid-menu-item")
	ErrInvalidName      = errors.New("invalid-name")
	ErrInvalidPrice     = errors.New("invalid-price")
	ErrInvalidCategory  = errors.New("invalid-category")
	ErrMenuItemNotFound = errors.New("menu-item-not-found")

	// Carrito y pedidos
	ErrInvalidCartItems     = errors.New("invalid-cart-items")
	ErrInvalidOrderItems    = errors.New("invalid-order-items")
	ErrOrderNotFound        = errors.New("order-not-found")
	ErrInvalidStatus        = errors.New("invalid-status")
	ErrInvalidStatusForUser = errors.New("invalid-status-for-user")
	ErrCannotCancel         = errors.New("cannot-cancel")
	ErrInvalidTransition    = errors.New("invalid-transition")
)
