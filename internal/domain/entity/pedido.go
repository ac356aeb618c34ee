package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canais de venda suportados na importação.
const (
	CanalML     = "ML"
	CanalShopee = "SHOPEE"
	CanalSite   = "SITE"
)

// PedidoItem uma linha de pedido de cliente. PedidoID agrupa as linhas de um
// pedido multi-SKU; Rastreio serve de fallback de agrupamento quando o
// marketplace não informa o número do pedido. Sku é o SKU importado (resolve
// via VinculoSku). Data vem da planilha em formatos variados e é normalizada
// de forma tolerante no planejamento.
type PedidoItem struct {
	ID        string
	EmpresaID string
	PedidoID  string
	Rastreio  string
	Sku       string
	QtyFinal  decimal.Decimal // unidades realmente necessárias, pós-multiplicador
	Canal     string          // ML | SHOPEE | SITE
	Data      string
	CreatedAt time.Time
}
