package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.ItemEstoqueRepository = (*ItemEstoqueRepo)(nil)

// ItemEstoqueRepo implementação do porto ItemEstoqueRepository sobre
// PostgreSQL (usável com pool ou tx). ItensExpedicao vive numa coluna JSONB.
type ItemEstoqueRepo struct {
	q Querier
}

// NewItemEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewItemEstoqueRepository(q Querier) *ItemEstoqueRepo {
	return &ItemEstoqueRepo{q: q}
}

const itemCols = `id, empresa_id, codigo, nome, tipo, unidade, quantidade_atual, quantidade_minima, composicao, codigo_substituto, itens_expedicao, created_at, updated_at`

// Create persiste um novo item de estoque. (empresa_id, codigo) é único.
func (r *ItemEstoqueRepo) Create(item *entity.ItemEstoque) error {
	expedicao, err := json.Marshal(item.ItensExpedicao)
	if err != nil {
		return fmt.Errorf("marshal itens_expedicao: %w", err)
	}
	query := `
		INSERT INTO itens_estoque (` + itemCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.EmpresaID, item.Codigo, item.Nome, string(item.Tipo), item.Unidade,
		item.QuantidadeAtual, item.QuantidadeMinima, item.Composicao, item.CodigoSubstituto,
		expedicao, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert item_estoque: %w", err)
	}
	return nil
}

// GetByID busca um item por ID.
func (r *ItemEstoqueRepo) GetByID(id string) (*entity.ItemEstoque, error) {
	query := `SELECT ` + itemCols + ` FROM itens_estoque WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCodigo busca um item pela chave de negócio da empresa.
func (r *ItemEstoqueRepo) GetByCodigo(empresaID, codigo string) (*entity.ItemEstoque, error) {
	query := `SELECT ` + itemCols + ` FROM itens_estoque WHERE empresa_id = $1 AND codigo = $2`
	return r.scanOne(query, empresaID, codigo)
}

func (r *ItemEstoqueRepo) scanOne(query string, args ...any) (*entity.ItemEstoque, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	item, err := scanItem(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item_estoque: %w", err)
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.ItemEstoque, error) {
	var i entity.ItemEstoque
	var tipo string
	var expedicao []byte
	err := row.Scan(
		&i.ID, &i.EmpresaID, &i.Codigo, &i.Nome, &tipo, &i.Unidade,
		&i.QuantidadeAtual, &i.QuantidadeMinima, &i.Composicao, &i.CodigoSubstituto,
		&expedicao, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.Tipo = entity.TipoItem(tipo)
	if len(expedicao) > 0 {
		if err := json.Unmarshal(expedicao, &i.ItensExpedicao); err != nil {
			return nil, fmt.Errorf("unmarshal itens_expedicao: %w", err)
		}
	}
	return &i, nil
}

// Update atualiza os dados cadastrais de um item. QuantidadeAtual não passa
// por aqui; movimentações usam UpdateQuantidade.
func (r *ItemEstoqueRepo) Update(item *entity.ItemEstoque) error {
	expedicao, err := json.Marshal(item.ItensExpedicao)
	if err != nil {
		return fmt.Errorf("marshal itens_expedicao: %w", err)
	}
	query := `
		UPDATE itens_estoque
		SET nome = $2, tipo = $3, unidade = $4, quantidade_minima = $5, composicao = $6,
		    codigo_substituto = $7, itens_expedicao = $8, updated_at = $9
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Nome, string(item.Tipo), item.Unidade, item.QuantidadeMinima,
		item.Composicao, item.CodigoSubstituto, expedicao, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item_estoque: %w", err)
	}
	return nil
}

// UpdateQuantidade aplica um delta atômico à quantidade atual do item.
func (r *ItemEstoqueRepo) UpdateQuantidade(empresaID, codigo string, delta decimal.Decimal) error {
	query := `
		UPDATE itens_estoque
		SET quantidade_atual = quantidade_atual + $3, updated_at = now()
		WHERE empresa_id = $1 AND codigo = $2`
	cmd, err := r.q.Exec(context.Background(), query, empresaID, codigo, delta)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ListByEmpresa devolve o catálogo completo da empresa, em ordem estável de
// criação (os cálculos dependem de iteração determinística).
func (r *ItemEstoqueRepo) ListByEmpresa(empresaID string) ([]*entity.ItemEstoque, error) {
	query := `SELECT ` + itemCols + ` FROM itens_estoque WHERE empresa_id = $1 ORDER BY created_at, codigo`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list itens_estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemEstoque
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item_estoque: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete remove um item por ID.
func (r *ItemEstoqueRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM itens_estoque WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item_estoque: %w", err)
	}
	return nil
}
