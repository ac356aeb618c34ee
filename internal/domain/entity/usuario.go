package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin     = "admin"
	RoleOperador  = "operador"  // catálogo, importação, planejamento
	RoleSeparador = "separador" // bipagem/expedição
)

// Usuario representa um usuário do sistema (pertence a uma Empresa).
type Usuario struct {
	ID        string
	EmpresaID string
	Email     string
	SenhaHash string // hash bcrypt, nunca em claro no domínio após persistir
	Nome      string
	Role      string // admin, operador, separador
	Status    string // active, inactive, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
