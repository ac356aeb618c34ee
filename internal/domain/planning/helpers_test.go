package planning_test

import (
	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
)

// ──────────────────────────────────────────────────────────────────────────────
// Construtores de fixture compartilhados pelos testes do pacote.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(codigo string, tipo entity.TipoItem, unidade string, qty string) *entity.ItemEstoque {
	return &entity.ItemEstoque{
		Codigo:          codigo,
		Nome:            "Item " + codigo,
		Tipo:            tipo,
		Unidade:         unidade,
		QuantidadeAtual: dec(qty),
	}
}

func linhaFicha(codigo string, qtyPorPacote string) entity.ItemFicha {
	return entity.ItemFicha{CodigoComponente: codigo, QtyPorPacote: dec(qtyPorPacote)}
}

func ficha(produtoSku string, itens ...entity.ItemFicha) *entity.FichaTecnica {
	return &entity.FichaTecnica{ProdutoSku: produtoSku, Itens: itens}
}

func vinculo(skuImportado, skuMaster string) *entity.VinculoSku {
	return &entity.VinculoSku{SkuImportado: skuImportado, SkuMaster: skuMaster}
}

func pedido(pedidoID, sku string, qty string) *entity.PedidoItem {
	return &entity.PedidoItem{PedidoID: pedidoID, Sku: sku, QtyFinal: dec(qty), Canal: entity.CanalML, Data: "2026-08-01"}
}

func catalogo(itens []*entity.ItemEstoque, vinculos []*entity.VinculoSku, fichas []*entity.FichaTecnica) *planning.Catalog {
	return planning.NewCatalog(itens, vinculos, fichas)
}
