package entity

import "time"

// Empresa representa uma operação/tenant do sistema (multi-tenant, foco em
// pequenas operações de fulfillment de e-commerce no Brasil).
type Empresa struct {
	ID        string
	Nome      string
	CNPJ      string // com ou sem pontuação
	Endereco  string
	Telefone  string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
