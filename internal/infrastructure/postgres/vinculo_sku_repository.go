package postgres

import (
	"context"
	"fmt"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.VinculoSkuRepository = (*VinculoSkuRepo)(nil)

// VinculoSkuRepo implementação do porto VinculoSkuRepository sobre PostgreSQL.
type VinculoSkuRepo struct {
	q Querier
}

// NewVinculoSkuRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVinculoSkuRepository(q Querier) *VinculoSkuRepo {
	return &VinculoSkuRepo{q: q}
}

// Upsert grava o vínculo; o último gravado para um SKU importado vence.
func (r *VinculoSkuRepo) Upsert(vinculo *entity.VinculoSku) error {
	query := `
		INSERT INTO vinculos_sku (id, empresa_id, sku_importado, sku_master, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (empresa_id, sku_importado)
		DO UPDATE SET sku_master = EXCLUDED.sku_master`
	_, err := r.q.Exec(context.Background(), query,
		vinculo.ID, vinculo.EmpresaID, vinculo.SkuImportado, vinculo.SkuMaster, vinculo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert vinculo_sku: %w", err)
	}
	return nil
}

// GetBySkuImportado busca o vínculo de um SKU importado.
func (r *VinculoSkuRepo) GetBySkuImportado(empresaID, skuImportado string) (*entity.VinculoSku, error) {
	query := `
		SELECT id, empresa_id, sku_importado, sku_master, created_at
		FROM vinculos_sku WHERE empresa_id = $1 AND sku_importado = $2`
	var v entity.VinculoSku
	err := r.q.QueryRow(context.Background(), query, empresaID, skuImportado).Scan(
		&v.ID, &v.EmpresaID, &v.SkuImportado, &v.SkuMaster, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vinculo_sku: %w", err)
	}
	return &v, nil
}

// ListByEmpresa devolve todos os vínculos da empresa.
func (r *VinculoSkuRepo) ListByEmpresa(empresaID string) ([]*entity.VinculoSku, error) {
	query := `
		SELECT id, empresa_id, sku_importado, sku_master, created_at
		FROM vinculos_sku WHERE empresa_id = $1 ORDER BY sku_importado`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list vinculos_sku: %w", err)
	}
	defer rows.Close()
	var list []*entity.VinculoSku
	for rows.Next() {
		var v entity.VinculoSku
		if err := rows.Scan(&v.ID, &v.EmpresaID, &v.SkuImportado, &v.SkuMaster, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vinculo_sku: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// DeleteBySkuImportado remove o vínculo de um SKU importado.
func (r *VinculoSkuRepo) DeleteBySkuImportado(empresaID, skuImportado string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM vinculos_sku WHERE empresa_id = $1 AND sku_importado = $2`,
		empresaID, skuImportado,
	)
	if err != nil {
		return fmt.Errorf("delete vinculo_sku: %w", err)
	}
	return nil
}
