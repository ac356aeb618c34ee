package empresa

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// EmpresaUseCase cadastro de empresas (tenants).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create cadastra uma nova empresa com status ativo.
func (uc *EmpresaUseCase) Create(nome, cnpj, endereco, telefone, email string) (*entity.Empresa, error) {
	if nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      nome,
		CNPJ:      cnpj,
		Endereco:  endereco,
		Telefone:  telefone,
		Email:     email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

// GetByID busca uma empresa.
func (uc *EmpresaUseCase) GetByID(id string) (*entity.Empresa, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return empresa, nil
}

// List lista empresas com paginação.
func (uc *EmpresaUseCase) List(limit, offset int) ([]*entity.Empresa, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(limit, offset)
}
