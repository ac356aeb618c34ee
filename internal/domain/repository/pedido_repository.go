package repository

import (
	"time"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// PedidoRepository define o porto de persistência para PedidoItem (DIP).
type PedidoRepository interface {
	CreateBatch(itens []*entity.PedidoItem) error
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.PedidoItem, error)
	// ListByJanela devolve as linhas de pedido criadas dentro da janela [de, ate].
	ListByJanela(empresaID string, de, ate time.Time) ([]*entity.PedidoItem, error)
	DeleteByPedidoID(empresaID, pedidoID string) error
}
