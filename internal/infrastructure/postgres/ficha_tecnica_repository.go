package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.FichaTecnicaRepository = (*FichaTecnicaRepo)(nil)

// FichaTecnicaRepo implementação do porto FichaTecnicaRepository sobre
// PostgreSQL. Os itens da ficha vivem numa coluna JSONB, preservando a ordem.
type FichaTecnicaRepo struct {
	q Querier
}

// NewFichaTecnicaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFichaTecnicaRepository(q Querier) *FichaTecnicaRepo {
	return &FichaTecnicaRepo{q: q}
}

// Upsert grava a ficha do produto, substituindo itens anteriores
// (uma ficha por produto_sku, ON CONFLICT).
func (r *FichaTecnicaRepo) Upsert(ficha *entity.FichaTecnica) error {
	itens, err := json.Marshal(ficha.Itens)
	if err != nil {
		return fmt.Errorf("marshal itens da ficha: %w", err)
	}
	query := `
		INSERT INTO fichas_tecnicas (id, empresa_id, produto_sku, itens, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (empresa_id, produto_sku)
		DO UPDATE SET itens = EXCLUDED.itens, updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(context.Background(), query,
		ficha.ID, ficha.EmpresaID, ficha.ProdutoSku, itens, ficha.CreatedAt, ficha.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert ficha_tecnica: %w", err)
	}
	return nil
}

// GetByProdutoSku busca a ficha de um produto.
func (r *FichaTecnicaRepo) GetByProdutoSku(empresaID, produtoSku string) (*entity.FichaTecnica, error) {
	query := `
		SELECT id, empresa_id, produto_sku, itens, created_at, updated_at
		FROM fichas_tecnicas WHERE empresa_id = $1 AND produto_sku = $2`
	var f entity.FichaTecnica
	var itens []byte
	err := r.q.QueryRow(context.Background(), query, empresaID, produtoSku).Scan(
		&f.ID, &f.EmpresaID, &f.ProdutoSku, &itens, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ficha_tecnica: %w", err)
	}
	if err := json.Unmarshal(itens, &f.Itens); err != nil {
		return nil, fmt.Errorf("unmarshal itens da ficha: %w", err)
	}
	return &f, nil
}

// ListByEmpresa devolve todas as fichas da empresa.
func (r *FichaTecnicaRepo) ListByEmpresa(empresaID string) ([]*entity.FichaTecnica, error) {
	query := `
		SELECT id, empresa_id, produto_sku, itens, created_at, updated_at
		FROM fichas_tecnicas WHERE empresa_id = $1 ORDER BY produto_sku`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list fichas_tecnicas: %w", err)
	}
	defer rows.Close()
	var list []*entity.FichaTecnica
	for rows.Next() {
		var f entity.FichaTecnica
		var itens []byte
		if err := rows.Scan(&f.ID, &f.EmpresaID, &f.ProdutoSku, &itens, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ficha_tecnica: %w", err)
		}
		if err := json.Unmarshal(itens, &f.Itens); err != nil {
			return nil, fmt.Errorf("unmarshal itens da ficha: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// DeleteByProdutoSku remove a ficha de um produto.
func (r *FichaTecnicaRepo) DeleteByProdutoSku(empresaID, produtoSku string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM fichas_tecnicas WHERE empresa_id = $1 AND produto_sku = $2`,
		empresaID, produtoSku,
	)
	if err != nil {
		return fmt.Errorf("delete ficha_tecnica: %w", err)
	}
	return nil
}
