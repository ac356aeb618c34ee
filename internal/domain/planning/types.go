package planning

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialItem resultado agregado do cálculo de materiais: quantidade
// acumulada de um material através de todos os pedidos do lote.
// QtdPedidos é o número de pedidos distintos que consomem o material
// (preenchido apenas na visão de componentes de kit).
type MaterialItem struct {
	Codigo     string          `json:"codigo"`
	Nome       string          `json:"nome"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Unidade    string          `json:"unidade"`
	QtdPedidos int             `json:"qtd_pedidos,omitempty"`
}

// ResultadoMateriais saída do agregador pedido→material. SkusNaoVinculados
// lista os SKUs importados sem vínculo com o catálogo: é a razão dominante de
// cálculos de material "errados" no mundo real e cabe ao chamador exibi-los.
type ResultadoMateriais struct {
	Materiais         []MaterialItem `json:"materiais"`
	SkusNaoVinculados []string       `json:"skus_nao_vinculados"`
}

// Motivos de produção no plano.
const (
	MotivoSemEstoque        = "sem estoque"
	MotivoEstoqueSubstituto = "usando estoque substituto"
	MotivoEstoqueBaixo      = "estoque baixo"
)

// ItemPlanoProducao previsão por produto: ritmo de venda histórico, demanda
// projetada e produção necessária líquida do estoque atual e do substituto.
type ItemPlanoProducao struct {
	Codigo             string          `json:"codigo"`
	Nome               string          `json:"nome"`
	MediaVendasDia     decimal.Decimal `json:"media_vendas_dia"`
	DemandaPrevista    decimal.Decimal `json:"demanda_prevista"`
	ProducaoNecessaria int64           `json:"producao_necessaria"`
	Motivo             string          `json:"motivo"`
	CodigoSubstituto   string          `json:"codigo_substituto,omitempty"`
	EstoqueSubstituto  decimal.Decimal `json:"estoque_substituto"`
}

// InsumoNecessario falta de matéria-prima derivada do plano de produção.
// Deficit é com sinal: negativo significa sobra.
type InsumoNecessario struct {
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Unidade       string          `json:"unidade"`
	QtyNecessaria decimal.Decimal `json:"qty_necessaria"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	Deficit       decimal.Decimal `json:"deficit"`
	LeadTimeDias  int             `json:"lead_time_dias"`
	ComprarAte    time.Time       `json:"comprar_ate"`
}

// ResultadoPlanejamento saída combinada do planejador: plano de produção por
// produto e insumos necessários propagados pela explosão das fichas.
type ResultadoPlanejamento struct {
	PlanoProducao      []ItemPlanoProducao `json:"plano_producao"`
	InsumosNecessarios []InsumoNecessario  `json:"insumos_necessarios"`
}
