package dto

import "time"

// CreateAccountRequest entrada para registrar un usuario o cliente (password en texto, se hashea en el use case).
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest entrada para actualizar nombre y email. La contraseña
// se cambia por su propio endpoint.
type UpdateAccountRequest struct {
	Name  string `json:"name" validate:"required,max=150"`
	Email string `json:"email" validate:"required,max=150"`
}

// UpdatePasswordRequest entrada para PATCH /:id/senha.
type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

// AccountResponse salida de un usuario o cliente (sin password).
type AccountResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
	Active       bool      `json:"active"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      AccountResponse `json:"user"`
}
