package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemFicha uma linha da ficha técnica: componente e quantidade consumida por
// um pacote do produto pai. DaPesagem marca o insumo primário a descontar do
// estoque pesado em lote (por convenção, exatamente um por ficha — a convenção
// vem da UI, o modelo não a impõe). CodigoSubstituto é apenas informativo: a
// explosão nunca o aplica automaticamente; a troca é decisão humana.
type ItemFicha struct {
	CodigoComponente string          `json:"codigo_componente"`
	QtyPorPacote     decimal.Decimal `json:"qty_por_pacote"`
	DaPesagem        bool            `json:"da_pesagem,omitempty"`
	CodigoSubstituto string          `json:"codigo_substituto,omitempty"`
}

// FichaTecnica a receita de um produto (1:1 por ProdutoSku, chaveado pelo
// Codigo do item master). A ordem de Itens é significativa e preservada.
// Os Itens não devem conter o próprio ProdutoSku (sem autorreferência).
type FichaTecnica struct {
	ID         string
	EmpresaID  string
	ProdutoSku string
	Itens      []ItemFicha
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
