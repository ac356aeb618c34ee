package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// JanelaRequest janela de pedidos para os cálculos de material.
type JanelaRequest struct {
	De  string `query:"de"`  // "2006-01-02"; vazio = sem limite inferior
	Ate string `query:"ate"` // "2006-01-02"; vazio = hoje
}

// PlanejamentoRequest parâmetros do planejador; campos zerados caem nos
// valores salvos na configuração da empresa.
type PlanejamentoRequest struct {
	Modo                 string   `json:"modo,omitempty"` // automatico | manual
	PeriodoAnaliseDias   int      `json:"periodo_analise_dias,omitempty"`
	PeriodoPrevisaoDias  int      `json:"periodo_previsao_dias,omitempty"`
	EstoqueSegurancaDias int      `json:"estoque_seguranca_dias,omitempty"`
	LeadTimeDias         int      `json:"lead_time_dias,omitempty"`
	DiasPico             []string `json:"dias_pico,omitempty"`
	// % de uplift no modo manual; nil mantém o valor salvo.
	MultiplicadorPromocao *decimal.Decimal `json:"multiplicador_promocao,omitempty"`
}

// ConfiguracaoRequest configuração completa da empresa.
type ConfiguracaoRequest struct {
	Expedicao    entity.ConfigExpedicao        `json:"expedicao"`
	Geral        entity.ConfigGeral            `json:"geral"`
	Planejamento entity.ParametrosPlanejamento `json:"planejamento"`
}
