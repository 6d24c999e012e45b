package dto

// DTOs del contrato de autenticación. Los comparten el adaptador REST del
// cliente y los handlers del backend de desarrollo: un solo lugar define las
// claves JSON del cable (`rol`, `almacen_id`).

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación pública del usuario (sin hash).
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Rol       string  `json:"rol"`
	AlmacenID *string `json:"almacen_id"`
}

// LoginResponse respuesta de POST /auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest cuerpo de POST /auth/register (solo admin).
type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Name      string  `json:"name"`
	Rol       string  `json:"rol"`
	AlmacenID *string `json:"almacen_id"`
}

// UpdateProfileRequest cuerpo de PUT /users/profile. Ambos campos son
// opcionales pero al menos uno debe venir.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ErrorResponse error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
