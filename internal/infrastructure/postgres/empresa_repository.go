package postgres

import (
	"context"
	"fmt"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador de persistência para empresas.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste uma nova empresa.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nome, cnpj, endereco, telefone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, empresa.CNPJ, empresa.Endereco,
		empresa.Telefone, empresa.Email, empresa.Status,
		empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID busca uma empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, email, status, created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Email, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// List lista empresas com paginação.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	query := `
		SELECT id, nome, cnpj, endereco, telefone, email, status, created_at, updated_at
		FROM empresas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Email, &e.Status,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update atualiza uma empresa existente.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `
		UPDATE empresas SET nome = $2, cnpj = $3, endereco = $4, telefone = $5, email = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, empresa.CNPJ, empresa.Endereco,
		empresa.Telefone, empresa.Email, empresa.Status, empresa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}
