package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoItemResponse linha de pedido na API.
type PedidoItemResponse struct {
	ID       string          `json:"id"`
	PedidoID string          `json:"pedido_id"`
	Rastreio string          `json:"rastreio,omitempty"`
	Sku      string          `json:"sku"`
	QtyFinal decimal.Decimal `json:"qty_final"`
	Canal    string          `json:"canal"`
	Data     string          `json:"data"`
}

// ImportacaoResponse resultado da importação de planilha de pedidos.
// SkusNaoVinculados deve ser exibido ao operador: sem vínculo, a linha fica
// fora dos cálculos de material.
type ImportacaoResponse struct {
	LinhasImportadas  int       `json:"linhas_importadas"`
	LinhasIgnoradas   int       `json:"linhas_ignoradas"`
	SkusNaoVinculados []string  `json:"skus_nao_vinculados"`
	ImportadoEm       time.Time `json:"importado_em"`
}
