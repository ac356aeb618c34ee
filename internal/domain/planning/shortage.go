package planning

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// CalcularInsumosNecessarios propaga o plano de produção para faltas de
// matéria-prima: re-executa a explosão das fichas com a produção necessária
// (não o histórico de vendas), acumulando apenas insumos e processados.
//
// ComprarAte = hoje - LeadTimeDias, reproduzindo o comportamento de origem:
// a data sai no passado, lendo-se "isto já deveria ter sido pedido".
func CalcularInsumosNecessarios(
	plano []ItemPlanoProducao,
	cat *Catalog,
	leadTimeDias int,
	hoje time.Time,
) ([]InsumoNecessario, error) {
	acc := make(map[string]decimal.Decimal)
	for _, item := range plano {
		if item.ProducaoNecessaria <= 0 {
			continue
		}
		qty := decimal.NewFromInt(item.ProducaoNecessaria)
		if err := cat.ExplodeInsumos(item.Codigo, qty, acc); err != nil {
			return nil, err
		}
	}

	comprarAte := hoje.AddDate(0, 0, -leadTimeDias)
	insumos := make([]InsumoNecessario, 0, len(acc))
	for codigo, necessaria := range acc {
		item, ok := cat.Item(codigo)
		if !ok {
			continue
		}
		insumos = append(insumos, InsumoNecessario{
			Codigo:        codigo,
			Nome:          item.Nome,
			Unidade:       item.Unidade,
			QtyNecessaria: necessaria,
			EstoqueAtual:  item.QuantidadeAtual,
			Deficit:       necessaria.Sub(item.QuantidadeAtual),
			LeadTimeDias:  leadTimeDias,
			ComprarAte:    comprarAte,
		})
	}

	// Maior déficit primeiro; desempate pelo código.
	sort.SliceStable(insumos, func(i, j int) bool {
		if !insumos[i].Deficit.Equal(insumos[j].Deficit) {
			return insumos[i].Deficit.GreaterThan(insumos[j].Deficit)
		}
		return insumos[i].Codigo < insumos[j].Codigo
	})
	return insumos, nil
}

// GerarPlanejamento ponto de entrada combinado do planejador: previsão por
// produto e, a partir dela, os insumos necessários com data de compra.
func GerarPlanejamento(
	pedidos []*entity.PedidoItem,
	cat *Catalog,
	params entity.ParametrosPlanejamento,
	hoje time.Time,
) (*ResultadoPlanejamento, error) {
	plano := GerarPlanoProducao(pedidos, cat, params)
	insumos, err := CalcularInsumosNecessarios(plano, cat, params.LeadTimeDias, hoje)
	if err != nil {
		return nil, err
	}
	return &ResultadoPlanejamento{
		PlanoProducao:      plano,
		InsumosNecessarios: insumos,
	}, nil
}
