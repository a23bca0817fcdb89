package dto

// RegisterRequest entrada para registro: solo username.
type RegisterRequest struct {
	Username string `json:"username"`
}

// LoginRequest entrada para login. No hay password: la identidad es el username.
type LoginRequest struct {
	Username string `json:"username"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionResponse respuesta de whoAmI.
type SessionResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}
