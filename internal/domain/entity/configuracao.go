package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegraExpedicao uma faixa de embalagem: para um pedido cuja soma de unidades
// cai em [De, Ate] (inclusivo), consome Quantidade fixa de CodigoItem.
// A primeira faixa que casar vence; faixas sobrepostas são erro de
// configuração rejeitado ao salvar, não no cálculo.
type RegraExpedicao struct {
	De         int             `json:"de"`
	Ate        int             `json:"ate"`
	CodigoItem string          `json:"codigo_item"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// ConfigExpedicao os dois conjuntos independentes de regras de embalagem.
type ConfigExpedicao struct {
	RegrasPapelParede []RegraExpedicao `json:"regras_papel_parede"`
	RegrasMiudos      []RegraExpedicao `json:"regras_miudos"`
}

// ConfigGeral classificação de produtos para regras de expedição.
// CoresBase: SKU master -> cor base do papel de parede; a presença da chave é
// o que marca o produto como papel de parede (senão é miúdo).
type ConfigGeral struct {
	CoresBase map[string]string `json:"cores_base"`
}

// Modos de planejamento.
const (
	ModoAutomatico = "automatico"
	ModoManual     = "manual"
)

// ParametrosPlanejamento parâmetros da previsão de vendas e produção.
type ParametrosPlanejamento struct {
	Modo                  string          `json:"modo"` // automatico | manual
	PeriodoAnaliseDias    int             `json:"periodo_analise_dias"`
	PeriodoPrevisaoDias   int             `json:"periodo_previsao_dias"`
	EstoqueSegurancaDias  int             `json:"estoque_seguranca_dias"`
	LeadTimeDias          int             `json:"lead_time_dias"`
	DiasPico              []string        `json:"dias_pico"`               // datas "2006-01-02" de promoção/pico
	MultiplicadorPromocao decimal.Decimal `json:"multiplicador_promocao"` // % de uplift (modo manual)
}

// Configuracao agregado de configurações da empresa (persistido como JSONB).
type Configuracao struct {
	EmpresaID    string
	Expedicao    ConfigExpedicao
	Geral        ConfigGeral
	Planejamento ParametrosPlanejamento
	UpdatedAt    time.Time
}
