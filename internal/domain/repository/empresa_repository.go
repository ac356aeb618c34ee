package repository

import "github.com/fulfila/fulfila-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência para Empresa (DIP).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
}
