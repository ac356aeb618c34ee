package planning

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// novoColador colador pt-BR para ordenação de nomes de material.
// collate.Collator não é seguro para uso concorrente; criar um por cálculo.
func novoColador() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

// chaveGrupo chave de agrupamento de um pedido multi-SKU: número do pedido,
// com fallback para o rastreio. Vazio quando não há nenhum dos dois
// (a linha é descartada do agrupamento).
func chaveGrupo(linha *entity.PedidoItem) string {
	if linha.PedidoID != "" {
		return linha.PedidoID
	}
	return linha.Rastreio
}

// grupoPedido linhas de um mesmo pedido, classificadas por categoria.
type grupoPedido struct {
	linhas      []*entity.PedidoItem
	papelParede []*entity.PedidoItem // linha cujo SKU master tem cor base configurada
	miudos      []*entity.PedidoItem // resolvida ao catálogo mas sem cor base
}

// CalculateMaterialList agregação completa pedido→material: agrupa pedidos,
// aplica regras de embalagem por faixa de unidades, soma itens de expedição
// por produto e explode as fichas técnicas recursivamente, sem dupla contagem
// entre expedição fixa e ficha.
//
// Classificação do grupo é mutuamente exclusiva: se QUALQUER linha for papel
// de parede, o grupo inteiro usa as regras de papel de parede (a caixa de
// papel de parede engole os miúdos enviados junto); só sem nenhuma linha de
// papel de parede valem as regras de miúdos.
//
// Erro possível apenas por ficha técnica cíclica (ErrFichaCiclica).
func CalculateMaterialList(
	pedidos []*entity.PedidoItem,
	cat *Catalog,
	expedicao entity.ConfigExpedicao,
	geral entity.ConfigGeral,
) (*ResultadoMateriais, error) {
	acc := make(map[string]decimal.Decimal)
	naoVinculados := make(map[string]bool)

	// 1. Agrupar por pedido (fallback rastreio; sem ambos, linha descartada),
	//    preservando a ordem de primeira aparição para soma reprodutível.
	grupos := make(map[string]*grupoPedido)
	var ordemGrupos []string
	for _, linha := range pedidos {
		chave := chaveGrupo(linha)
		if chave == "" {
			continue
		}
		g, ok := grupos[chave]
		if !ok {
			g = &grupoPedido{}
			grupos[chave] = g
			ordemGrupos = append(ordemGrupos, chave)
		}
		g.linhas = append(g.linhas, linha)

		if _, temVinculo := cat.SkuMaster(linha.Sku); !temVinculo {
			naoVinculados[linha.Sku] = true
			continue
		}
		item, ok := cat.ResolverItem(linha.Sku)
		if !ok {
			continue
		}
		if _, ehPapel := geral.CoresBase[item.Codigo]; ehPapel {
			g.papelParede = append(g.papelParede, linha)
		} else {
			g.miudos = append(g.miudos, linha)
		}
	}

	for _, chave := range ordemGrupos {
		g := grupos[chave]

		// 2. Regra de embalagem: papel de parede tem prioridade sobre miúdos.
		if len(g.papelParede) > 0 {
			aplicarRegraExpedicao(acc, expedicao.RegrasPapelParede, somarUnidades(g.papelParede))
		} else if len(g.miudos) > 0 {
			aplicarRegraExpedicao(acc, expedicao.RegrasMiudos, somarUnidades(g.miudos))
		}

		// 3. Itens de expedição por produto; os códigos entram no conjunto de
		//    supressão do grupo para a explosão não contá-los de novo.
		ignorar := make(map[string]bool)
		for _, linha := range g.linhas {
			item, ok := cat.ResolverItem(linha.Sku)
			if !ok {
				continue
			}
			for _, exp := range item.ItensExpedicao {
				acc[exp.CodigoItem] = acc[exp.CodigoItem].Add(exp.QtyPorPacote.Mul(linha.QtyFinal))
				ignorar[exp.CodigoItem] = true
			}
		}

		// 4. Explosão completa por linha, honrando a supressão do grupo.
		//    O escopo é por grupo: o mesmo material pode ser suprimido aqui e
		//    contado normalmente num pedido irmão sem item de expedição.
		for _, linha := range g.linhas {
			item, ok := cat.ResolverItem(linha.Sku)
			if !ok {
				continue
			}
			if err := cat.Explode(item.Codigo, linha.QtyFinal, acc, ignorar); err != nil {
				return nil, err
			}
		}
	}

	resultado := &ResultadoMateriais{
		Materiais:         montarMateriais(acc, cat),
		SkusNaoVinculados: chavesOrdenadas(naoVinculados),
	}
	return resultado, nil
}

// aplicarRegraExpedicao procura a primeira faixa [De, Ate] que contém a soma
// de unidades e acumula a quantidade fixa do material de embalagem dela.
// Varredura ordenada explícita: a primeira faixa que casar vence.
func aplicarRegraExpedicao(acc map[string]decimal.Decimal, regras []entity.RegraExpedicao, unidades decimal.Decimal) {
	for _, regra := range regras {
		de := decimal.NewFromInt(int64(regra.De))
		ate := decimal.NewFromInt(int64(regra.Ate))
		if unidades.GreaterThanOrEqual(de) && unidades.LessThanOrEqual(ate) {
			acc[regra.CodigoItem] = acc[regra.CodigoItem].Add(regra.Quantidade)
			return
		}
	}
}

func somarUnidades(linhas []*entity.PedidoItem) decimal.Decimal {
	total := decimal.Zero
	for _, linha := range linhas {
		total = total.Add(linha.QtyFinal)
	}
	return total
}

func chavesOrdenadas(m map[string]bool) []string {
	chaves := make([]string, 0, len(m))
	for k := range m {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)
	return chaves
}
