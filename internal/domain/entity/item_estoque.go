package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoItem classifica um item de estoque.
type TipoItem string

const (
	TipoInsumo     TipoItem = "insumo"     // matéria-prima
	TipoProduto    TipoItem = "produto"    // produto vendável
	TipoProcessado TipoItem = "processado" // intermediário semiacabado, tem ficha própria e estoque próprio
)

// Unidades de medida aceitas.
const (
	UnidadeKg    = "kg"
	UnidadeUn    = "un"
	UnidadeMetro = "m"
	UnidadeLitro = "L"
)

// Composição de um produto.
const (
	ComposicaoSimples = "simples"
	ComposicaoKit     = "kit" // composto por outros produtos inteiros
)

// ItemExpedicao consumo fixo de material de embalagem por unidade vendida do
// produto, independente da ficha técnica (ex.: 1 tubo de papelão por rolo).
type ItemExpedicao struct {
	CodigoItem   string          `json:"codigo_item"`
	QtyPorPacote decimal.Decimal `json:"qty_por_pacote"`
}

// ItemEstoque representa uma entidade estocada: insumo, produto vendável ou
// processado. Codigo é a chave de negócio (único por empresa); toda
// movimentação de estoque (bipagem, ajuste manual, importação) altera
// QuantidadeAtual.
type ItemEstoque struct {
	ID               string
	EmpresaID        string
	Codigo           string
	Nome             string
	Tipo             TipoItem
	Unidade          string // kg, un, m, L
	QuantidadeAtual  decimal.Decimal
	QuantidadeMinima decimal.Decimal
	Composicao       string          // simples | kit (vazio = simples)
	CodigoSubstituto string          // código de outro item usável como fonte de estoque quando o primário acaba
	ItensExpedicao   []ItemExpedicao // embalagem consumida por unidade, fora da ficha
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EhKit informa se o item é um produto de composição kit.
func (i *ItemEstoque) EhKit() bool {
	return i.Composicao == ComposicaoKit
}
