package dto

import "time"

// RegisterRequest cadastro de usuário em uma empresa existente.
type RegisterRequest struct {
	EmpresaID string `json:"empresa_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nome      string `json:"nome"`
	Role      string `json:"role"` // admin, operador, separador (padrão: operador)
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuário sem campos sensíveis.
type UserResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
