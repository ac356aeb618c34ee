package planning

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// Explode expande recursivamente a ficha técnica de codigo para a quantidade
// informada, acumulando as quantidades de componente em acc (modo completo).
//
// Regras:
//   - produto sem ficha: no-op (folha sem receita, não é erro);
//   - componente ausente do catálogo: pulado em silêncio (tolerância a dados
//     órfãos, não é erro fatal);
//   - componente PROCESSADO: recursão na ficha dele ANTES de acumular, e a
//     quantidade bruta dele também é acumulada — visibilidade dupla
//     intencional, pois um processado também é comprado/estocado por si só;
//   - código presente em ignorar: suprimido em toda profundidade (evita contar
//     embalagem tanto pela regra fixa de expedição quanto pela ficha);
//   - ciclo no grafo de fichas (A contém B, B contém A): ErrFichaCiclica,
//     detectado por conjunto de visitados do caminho corrente.
//
// A explosão é determinística para entradas idênticas e puramente aditiva;
// a ordem de iteração é a ordem armazenada dos itens da ficha.
func (c *Catalog) Explode(codigo string, qty decimal.Decimal, acc map[string]decimal.Decimal, ignorar map[string]bool) error {
	return c.explode(codigo, qty, acc, ignorar, nil, make(map[string]bool))
}

// ExplodeInsumos como Explode, mas acumula apenas componentes de tipo insumo
// ou processado — produtos no meio da árvore não entram no total (modo
// "necessidade de compra" do planejador).
func (c *Catalog) ExplodeInsumos(codigo string, qty decimal.Decimal, acc map[string]decimal.Decimal) error {
	tipos := map[entity.TipoItem]bool{
		entity.TipoInsumo:     true,
		entity.TipoProcessado: true,
	}
	return c.explode(codigo, qty, acc, nil, tipos, make(map[string]bool))
}

func (c *Catalog) explode(
	codigo string,
	qty decimal.Decimal,
	acc map[string]decimal.Decimal,
	ignorar map[string]bool,
	tipos map[entity.TipoItem]bool,
	caminho map[string]bool,
) error {
	ficha, ok := c.fichas[codigo]
	if !ok {
		return nil
	}
	if caminho[codigo] {
		return fmt.Errorf("%w: %s", domain.ErrFichaCiclica, codigo)
	}
	caminho[codigo] = true
	defer delete(caminho, codigo)

	for _, linha := range ficha.Itens {
		componente, ok := c.itens[linha.CodigoComponente]
		if !ok {
			continue
		}
		if ignorar != nil && ignorar[componente.Codigo] {
			continue
		}
		necessario := qty.Mul(linha.QtyPorPacote)
		if componente.Tipo == entity.TipoProcessado {
			if err := c.explode(componente.Codigo, necessario, acc, ignorar, tipos, caminho); err != nil {
				return err
			}
		}
		if tipos == nil || tipos[componente.Tipo] {
			acc[componente.Codigo] = acc[componente.Codigo].Add(necessario)
		}
	}
	return nil
}

// CalculateKitComponents modo simples da explosão: responde "quais componentes
// de kit este lote de pedidos consumiu". Um nível só, sem recursão, apenas
// produtos de composição kit. QtdPedidos conta pedidos distintos por material.
//
// Difere de propósito do modo completo (CalculateMaterialList): este é a visão
// de consumo da importação; o completo responde o que precisa ser comprado ou
// produzido transitivamente.
func CalculateKitComponents(pedidos []*entity.PedidoItem, cat *Catalog) []MaterialItem {
	acc := make(map[string]decimal.Decimal)
	pedidosPorMaterial := make(map[string]map[string]bool)

	for _, linha := range pedidos {
		produto, ok := cat.ResolverItem(linha.Sku)
		if !ok || !produto.EhKit() {
			continue
		}
		ficha, ok := cat.Ficha(produto.Codigo)
		if !ok {
			continue
		}
		for _, item := range ficha.Itens {
			componente, ok := cat.Item(item.CodigoComponente)
			if !ok {
				continue
			}
			acc[componente.Codigo] = acc[componente.Codigo].Add(linha.QtyFinal.Mul(item.QtyPorPacote))
			if pedidosPorMaterial[componente.Codigo] == nil {
				pedidosPorMaterial[componente.Codigo] = make(map[string]bool)
			}
			pedidosPorMaterial[componente.Codigo][chaveGrupo(linha)] = true
		}
	}

	materiais := montarMateriais(acc, cat)
	for i := range materiais {
		materiais[i].QtdPedidos = len(pedidosPorMaterial[materiais[i].Codigo])
	}
	return materiais
}

// montarMateriais converte o acumulador em itens de saída com metadados do
// catálogo (códigos não resolvíveis são descartados em silêncio) e ordena por
// nome com colação pt-BR.
func montarMateriais(acc map[string]decimal.Decimal, cat *Catalog) []MaterialItem {
	materiais := make([]MaterialItem, 0, len(acc))
	for codigo, qty := range acc {
		item, ok := cat.Item(codigo)
		if !ok {
			continue
		}
		materiais = append(materiais, MaterialItem{
			Codigo:     codigo,
			Nome:       item.Nome,
			Quantidade: qty,
			Unidade:    item.Unidade,
		})
	}
	ordenarPorNome(materiais)
	return materiais
}

func ordenarPorNome(materiais []MaterialItem) {
	col := novoColador()
	sort.SliceStable(materiais, func(i, j int) bool {
		if cmp := col.CompareString(materiais[i].Nome, materiais[j].Nome); cmp != 0 {
			return cmp < 0
		}
		// Nomes iguais: desempate pelo código para saída reprodutível
		return materiais[i].Codigo < materiais[j].Codigo
	})
}
