package postgres

import (
	"context"
	"fmt"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, empresa_id, email, senha_hash, nome, role, status, created_at, updated_at`

// Create persiste um novo usuário. E-mail é único global.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.EmpresaID, usuario.Email, usuario.SenhaHash,
		usuario.Nome, usuario.Role, usuario.Status,
		usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail busca um usuário por e-mail (login).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE email = $1`
	return r.scanOne(query, email)
}

func (r *UsuarioRepo) scanOne(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.EmpresaID, &u.Email, &u.SenhaHash, &u.Nome, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update atualiza um usuário existente.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, senha_hash = $3, nome = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Email, usuario.SenhaHash, usuario.Nome,
		usuario.Role, usuario.Status, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListByEmpresa lista usuários de uma empresa com paginação.
func (r *UsuarioRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioCols + ` FROM usuarios
		WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.EmpresaID, &u.Email, &u.SenhaHash, &u.Nome, &u.Role, &u.Status,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove um usuário por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
