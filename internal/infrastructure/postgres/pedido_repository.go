package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação do porto PedidoRepository sobre PostgreSQL.
// Recebe o pool (não Querier): CreateBatch abre a própria transação.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository constrói o adaptador de persistência para pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

const pedidoCols = `id, empresa_id, pedido_id, rastreio, sku, qty_final, canal, data, created_at`

// CreateBatch insere as linhas de uma importação numa única transação:
// ou a planilha inteira entra, ou nada entra.
func (r *PedidoRepo) CreateBatch(itens []*entity.PedidoItem) error {
	if len(itens) == 0 {
		return nil
	}
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO pedidos (` + pedidoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, item := range itens {
		batch.Queue(query,
			item.ID, item.EmpresaID, item.PedidoID, item.Rastreio,
			item.Sku, item.QtyFinal, item.Canal, item.Data, item.CreatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert pedidos: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListByEmpresa lista linhas de pedido com paginação, mais recentes primeiro.
func (r *PedidoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.PedidoItem, error) {
	query := `
		SELECT ` + pedidoCols + ` FROM pedidos
		WHERE empresa_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

// ListByJanela devolve as linhas criadas dentro da janela [de, ate], na ordem
// de criação (os cálculos preservam a ordem de primeira aparição dos pedidos).
func (r *PedidoRepo) ListByJanela(empresaID string, de, ate time.Time) ([]*entity.PedidoItem, error) {
	query := `
		SELECT ` + pedidoCols + ` FROM pedidos
		WHERE empresa_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at, id`
	rows, err := r.pool.Query(context.Background(), query, empresaID, de, ate)
	if err != nil {
		return nil, fmt.Errorf("list pedidos por janela: %w", err)
	}
	defer rows.Close()
	return scanPedidos(rows)
}

func scanPedidos(rows pgx.Rows) ([]*entity.PedidoItem, error) {
	var list []*entity.PedidoItem
	for rows.Next() {
		var p entity.PedidoItem
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.PedidoID, &p.Rastreio,
			&p.Sku, &p.QtyFinal, &p.Canal, &p.Data, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeleteByPedidoID remove todas as linhas de um pedido.
func (r *PedidoRepo) DeleteByPedidoID(empresaID, pedidoID string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM pedidos WHERE empresa_id = $1 AND pedido_id = $2`,
		empresaID, pedidoID,
	)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}
