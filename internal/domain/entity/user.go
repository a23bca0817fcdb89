package entity

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identidades reservadas.
const (
	AdminUsername     = "admin" // pre-provisionado con rol admin
	ForbiddenUsername = "dog"   // nunca se registra ni se autentica
)

// User representa un cliente o administrador. Solo se identifica por username.
type User struct {
	Username string
	Role     string // user, admin
}

// IsAdmin indica si el usuario tiene rol admin.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleFor devuelve el rol que corresponde a un username nuevo: admin solo si es literalmente "admin".
func RoleFor(username string) string {
	if username == AdminUsername {
		return RoleAdmin
	}
	return RoleUser
}
