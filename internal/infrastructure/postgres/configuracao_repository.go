package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.ConfiguracaoRepository = (*ConfiguracaoRepo)(nil)

// ConfiguracaoRepo implementação do porto ConfiguracaoRepository sobre
// PostgreSQL. Uma linha por empresa, com os três blocos em colunas JSONB.
type ConfiguracaoRepo struct {
	q Querier
}

// NewConfiguracaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewConfiguracaoRepository(q Querier) *ConfiguracaoRepo {
	return &ConfiguracaoRepo{q: q}
}

// GetByEmpresa devolve a configuração da empresa. Quando nada foi salvo,
// devolve configuração zerada — nunca nil.
func (r *ConfiguracaoRepo) GetByEmpresa(empresaID string) (*entity.Configuracao, error) {
	query := `
		SELECT empresa_id, expedicao, geral, planejamento, updated_at
		FROM configuracoes WHERE empresa_id = $1`
	var c entity.Configuracao
	var expedicao, geral, planejamento []byte
	err := r.q.QueryRow(context.Background(), query, empresaID).Scan(
		&c.EmpresaID, &expedicao, &geral, &planejamento, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return &entity.Configuracao{EmpresaID: empresaID}, nil
		}
		return nil, fmt.Errorf("get configuracao: %w", err)
	}
	if err := json.Unmarshal(expedicao, &c.Expedicao); err != nil {
		return nil, fmt.Errorf("unmarshal expedicao: %w", err)
	}
	if err := json.Unmarshal(geral, &c.Geral); err != nil {
		return nil, fmt.Errorf("unmarshal geral: %w", err)
	}
	if err := json.Unmarshal(planejamento, &c.Planejamento); err != nil {
		return nil, fmt.Errorf("unmarshal planejamento: %w", err)
	}
	return &c, nil
}

// Save grava a configuração completa da empresa (upsert).
func (r *ConfiguracaoRepo) Save(config *entity.Configuracao) error {
	expedicao, err := json.Marshal(config.Expedicao)
	if err != nil {
		return fmt.Errorf("marshal expedicao: %w", err)
	}
	geral, err := json.Marshal(config.Geral)
	if err != nil {
		return fmt.Errorf("marshal geral: %w", err)
	}
	planejamento, err := json.Marshal(config.Planejamento)
	if err != nil {
		return fmt.Errorf("marshal planejamento: %w", err)
	}
	query := `
		INSERT INTO configuracoes (empresa_id, expedicao, geral, planejamento, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (empresa_id)
		DO UPDATE SET expedicao = EXCLUDED.expedicao, geral = EXCLUDED.geral,
		              planejamento = EXCLUDED.planejamento, updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(context.Background(), query,
		config.EmpresaID, expedicao, geral, planejamento, config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save configuracao: %w", err)
	}
	return nil
}
