package planning

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

var um = decimal.NewFromInt(1)
var cem = decimal.NewFromInt(100)

// vendasPorDia unidades vendidas por dia ("2006-01-02" → total).
type vendasPorDia map[string]decimal.Decimal

// GerarPlanoProducao calcula a previsão de vendas e a produção necessária por
// produto a partir do histórico de pedidos na janela de análise.
//
// Modo automático: separa os dias de venda em dias de pico (datas listadas em
// DiasPico) e dias normais; infere o multiplicador de promoção pela razão das
// médias (nunca abaixo de 1) e calcula o ritmo por produto só com os dias
// normais — picos entram via multiplicador, não na base.
//
// Modo manual: multiplicador = 1 + MultiplicadorPromocao/100 e o ritmo por
// produto considera todos os dias de venda, sem segregação.
//
// As médias são sobre dias distintos COM venda, não dias corridos. O cálculo
// não consulta relógio: o resultado é idempotente sobre o mesmo snapshot.
func GerarPlanoProducao(
	pedidos []*entity.PedidoItem,
	cat *Catalog,
	params entity.ParametrosPlanejamento,
) []ItemPlanoProducao {
	ehPico := make(map[string]bool, len(params.DiasPico))
	for _, dia := range params.DiasPico {
		ehPico[dia] = true
	}

	// Vendas globais e por produto, por dia.
	globais := make(vendasPorDia)
	porProduto := make(map[string]vendasPorDia)
	for _, linha := range pedidos {
		dia, ok := normalizarDia(linha.Data)
		if !ok {
			continue
		}
		item, ok := cat.ResolverItem(linha.Sku)
		if !ok || item.Tipo != entity.TipoProduto {
			continue
		}
		globais[dia] = globais[dia].Add(linha.QtyFinal)
		if porProduto[item.Codigo] == nil {
			porProduto[item.Codigo] = make(vendasPorDia)
		}
		porProduto[item.Codigo][dia] = porProduto[item.Codigo][dia].Add(linha.QtyFinal)
	}

	multiplicador := multiplicadorPromocao(globais, ehPico, params)
	janela := decimal.NewFromInt(int64(params.PeriodoPrevisaoDias + params.EstoqueSegurancaDias))

	var plano []ItemPlanoProducao
	for _, item := range cat.Itens() {
		if item.Tipo != entity.TipoProduto {
			continue
		}
		media := mediaDiariaProduto(porProduto[item.Codigo], ehPico, params.Modo)
		demanda := media.Mul(janela).Mul(multiplicador)

		estoqueSubstituto := decimal.Zero
		if item.CodigoSubstituto != "" {
			if sub, ok := cat.Item(item.CodigoSubstituto); ok {
				estoqueSubstituto = sub.QuantidadeAtual
			}
		}

		producao := demanda.Sub(item.QuantidadeAtual.Add(estoqueSubstituto))
		if producao.IsNegative() {
			producao = decimal.Zero
		}

		plano = append(plano, ItemPlanoProducao{
			Codigo:             item.Codigo,
			Nome:               item.Nome,
			MediaVendasDia:     media,
			DemandaPrevista:    demanda,
			ProducaoNecessaria: producao.Ceil().IntPart(),
			Motivo:             motivoProducao(item.QuantidadeAtual, estoqueSubstituto),
			CodigoSubstituto:   item.CodigoSubstituto,
			EstoqueSubstituto:  estoqueSubstituto,
		})
	}

	// Maior produção necessária primeiro; desempate pelo código.
	sort.SliceStable(plano, func(i, j int) bool {
		if plano[i].ProducaoNecessaria != plano[j].ProducaoNecessaria {
			return plano[i].ProducaoNecessaria > plano[j].ProducaoNecessaria
		}
		return plano[i].Codigo < plano[j].Codigo
	})
	return plano
}

// multiplicadorPromocao infere o fator de uplift conforme o modo.
func multiplicadorPromocao(globais vendasPorDia, ehPico map[string]bool, params entity.ParametrosPlanejamento) decimal.Decimal {
	if params.Modo == entity.ModoManual {
		return um.Add(params.MultiplicadorPromocao.Div(cem))
	}

	totalNormal, totalPico := decimal.Zero, decimal.Zero
	diasNormal, diasPico := 0, 0
	for dia, qty := range globais {
		if ehPico[dia] {
			totalPico = totalPico.Add(qty)
			diasPico++
		} else {
			totalNormal = totalNormal.Add(qty)
			diasNormal++
		}
	}
	if diasNormal == 0 || diasPico == 0 {
		return um
	}
	mediaNormal := totalNormal.Div(decimal.NewFromInt(int64(diasNormal)))
	mediaPico := totalPico.Div(decimal.NewFromInt(int64(diasPico)))
	if !mediaNormal.IsPositive() || !mediaPico.IsPositive() {
		return um
	}
	return decimal.Max(um, mediaPico.Div(mediaNormal))
}

// mediaDiariaProduto ritmo diário de venda de um produto: média sobre os dias
// distintos em que o produto teve venda. No modo automático os dias de pico
// ficam de fora da base (entram pelo multiplicador).
func mediaDiariaProduto(vendas vendasPorDia, ehPico map[string]bool, modo string) decimal.Decimal {
	total := decimal.Zero
	dias := 0
	for dia, qty := range vendas {
		if modo != entity.ModoManual && ehPico[dia] {
			continue
		}
		total = total.Add(qty)
		dias++
	}
	if dias == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(dias)))
}

// motivoProducao precedência simples: sem estoque algum > usando substituto >
// estoque baixo (há estoque primário mas aquém da demanda).
func motivoProducao(estoqueAtual, estoqueSubstituto decimal.Decimal) string {
	switch {
	case !estoqueAtual.IsPositive() && !estoqueSubstituto.IsPositive():
		return MotivoSemEstoque
	case !estoqueAtual.IsPositive():
		return MotivoEstoqueSubstituto
	default:
		return MotivoEstoqueBaixo
	}
}
