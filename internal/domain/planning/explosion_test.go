package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
)

// TestExplode_FichaSimples produto com um insumo: 10 pacotes × 0.5 = 5.
func TestExplode_FichaSimples(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("INK", entity.TipoInsumo, entity.UnidadeLitro, "0"),
		},
		nil,
		[]*entity.FichaTecnica{ficha("P1", linhaFicha("INK", "0.5"))},
	)

	acc := make(map[string]decimal.Decimal)
	require.NoError(t, cat.Explode("P1", dec("10"), acc, nil))

	require.Len(t, acc, 1)
	assert.True(t, acc["INK"].Equal(dec("5")), "esperado 5, obtido %s", acc["INK"])
}

// TestExplode_ProcessadoAninhado P1 → 2×PROC1, PROC1 → 3×RAW1.
// O processado acumula a quantidade bruta E expande a própria ficha
// (visibilidade dupla intencional, não dupla contagem).
func TestExplode_ProcessadoAninhado(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("PROC1", entity.TipoProcessado, entity.UnidadeKg, "0"),
			item("RAW1", entity.TipoInsumo, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("P1", linhaFicha("PROC1", "2")),
			ficha("PROC1", linhaFicha("RAW1", "3")),
		},
	)

	acc := make(map[string]decimal.Decimal)
	require.NoError(t, cat.Explode("P1", dec("1"), acc, nil))

	assert.True(t, acc["PROC1"].Equal(dec("2")), "PROC1: esperado 2, obtido %s", acc["PROC1"])
	assert.True(t, acc["RAW1"].Equal(dec("6")), "RAW1: esperado 6, obtido %s", acc["RAW1"])
}

// TestExplode_Linearidade dobrar a quantidade dobra exatamente cada acumulado.
func TestExplode_Linearidade(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("PROC1", entity.TipoProcessado, entity.UnidadeKg, "0"),
			item("RAW1", entity.TipoInsumo, entity.UnidadeKg, "0"),
			item("COLA", entity.TipoInsumo, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("P1", linhaFicha("PROC1", "1.5"), linhaFicha("COLA", "0.25")),
			ficha("PROC1", linhaFicha("RAW1", "4")),
		},
	)

	simples := make(map[string]decimal.Decimal)
	dobro := make(map[string]decimal.Decimal)
	require.NoError(t, cat.Explode("P1", dec("3"), simples, nil))
	require.NoError(t, cat.Explode("P1", dec("6"), dobro, nil))

	require.Len(t, dobro, len(simples))
	for codigo, qty := range simples {
		assert.True(t, dobro[codigo].Equal(qty.Mul(dec("2"))),
			"%s: %s não é o dobro de %s", codigo, dobro[codigo], qty)
	}
}

// TestExplode_Determinismo mesma entrada, mesmo acumulado, em invocações repetidas.
func TestExplode_Determinismo(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("PROC1", entity.TipoProcessado, entity.UnidadeKg, "0"),
			item("RAW1", entity.TipoInsumo, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("P1", linhaFicha("PROC1", "2"), linhaFicha("RAW1", "0.1")),
			ficha("PROC1", linhaFicha("RAW1", "3")),
		},
	)

	primeiro := make(map[string]decimal.Decimal)
	require.NoError(t, cat.Explode("P1", dec("7"), primeiro, nil))

	for i := 0; i < 5; i++ {
		outro := make(map[string]decimal.Decimal)
		require.NoError(t, cat.Explode("P1", dec("7"), outro, nil))
		require.Len(t, outro, len(primeiro))
		for codigo, qty := range primeiro {
			assert.True(t, outro[codigo].Equal(qty), "%s divergiu na repetição %d", codigo, i)
		}
	}
}

// TestExplode_SemFicha item folha sem receita: no-op, não é erro.
func TestExplode_SemFicha(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("INK", entity.TipoInsumo, entity.UnidadeLitro, "0")},
		nil, nil,
	)

	acc := make(map[string]decimal.Decimal)
	require.NoError(t, cat.Explode("INK", dec("10"), acc, nil))
	assert.Empty(t, acc)
}

// TestExplode_ComponenteOrfao componente fora do catálogo é pulado em silêncio.
func TestExplode_ComponenteOrfao(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("INK", entity.TipoInsumo, entity.UnidadeLitro, "0"),
		},
		nil,
		[]*entity.FichaTecnica{ficha("P1", linhaFicha("FANTASMA", "9"), linhaFicha("INK", "1"))},
	)

	acc := make(map[string]decimal.Decimal)
	require.NoError(t, cat.Explode("P1", dec("2"), acc, nil))

	require.Len(t, acc, 1)
	assert.True(t, acc["INK"].Equal(dec("2")))
}

// TestExplode_FichaCiclica A contém B e B contém A: erro distinto, sem
// estourar a pilha.
func TestExplode_FichaCiclica(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("A", entity.TipoProcessado, entity.UnidadeKg, "0"),
			item("B", entity.TipoProcessado, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("A", linhaFicha("B", "1")),
			ficha("B", linhaFicha("A", "1")),
		},
	)

	acc := make(map[string]decimal.Decimal)
	err := cat.Explode("A", dec("1"), acc, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFichaCiclica)
}

// TestExplode_IgnorarEmTodaProfundidade o conjunto de supressão vale também
// dentro das fichas de processados, não só no primeiro nível.
func TestExplode_IgnorarEmTodaProfundidade(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("PROC1", entity.TipoProcessado, entity.UnidadeKg, "0"),
			item("SACO", entity.TipoInsumo, entity.UnidadeUn, "0"),
			item("RAW1", entity.TipoInsumo, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("P1", linhaFicha("PROC1", "1"), linhaFicha("SACO", "1")),
			ficha("PROC1", linhaFicha("RAW1", "2"), linhaFicha("SACO", "1")),
		},
	)

	acc := make(map[string]decimal.Decimal)
	ignorar := map[string]bool{"SACO": true}
	require.NoError(t, cat.Explode("P1", dec("1"), acc, ignorar))

	_, temSaco := acc["SACO"]
	assert.False(t, temSaco, "SACO deveria estar suprimido em toda profundidade")
	assert.True(t, acc["RAW1"].Equal(dec("2")))
	assert.True(t, acc["PROC1"].Equal(dec("1")))
}

// TestExplodeInsumos produtos no meio da árvore não entram no total de
// insumos; processados recursam e acumulam.
func TestExplodeInsumos_FiltraProdutos(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("KIT", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("P2", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("PROC1", entity.TipoProcessado, entity.UnidadeKg, "0"),
			item("RAW1", entity.TipoInsumo, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("KIT", linhaFicha("P2", "2"), linhaFicha("PROC1", "1")),
			ficha("PROC1", linhaFicha("RAW1", "5")),
		},
	)

	acc := make(map[string]decimal.Decimal)
	require.NoError(t, cat.ExplodeInsumos("KIT", dec("1"), acc))

	_, temProduto := acc["P2"]
	assert.False(t, temProduto, "produto intermediário não deve entrar no total de insumos")
	assert.True(t, acc["PROC1"].Equal(dec("1")))
	assert.True(t, acc["RAW1"].Equal(dec("5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo simples: componentes de kit consumidos pelo lote
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateKitComponents(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			&entity.ItemEstoque{Codigo: "KIT1", Nome: "Kit Banheiro", Tipo: entity.TipoProduto, Unidade: entity.UnidadeUn, Composicao: entity.ComposicaoKit},
			item("P2", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("TAPETE", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("CORTINA", entity.TipoProduto, entity.UnidadeUn, "0"),
		},
		[]*entity.VinculoSku{vinculo("ML-KIT1", "KIT1"), vinculo("ML-P2", "P2")},
		[]*entity.FichaTecnica{
			ficha("KIT1", linhaFicha("TAPETE", "1"), linhaFicha("CORTINA", "2")),
			// P2 é simples: mesmo com ficha, fica fora do modo kit
			ficha("P2", linhaFicha("TAPETE", "5")),
		},
	)

	pedidos := []*entity.PedidoItem{
		pedido("PED-1", "ML-KIT1", "2"),
		pedido("PED-2", "ML-KIT1", "1"),
		pedido("PED-2", "ML-P2", "4"),
		pedido("PED-3", "SEM-VINCULO", "9"),
	}

	materiais := planning.CalculateKitComponents(pedidos, cat)
	require.Len(t, materiais, 2)

	porCodigo := make(map[string]planning.MaterialItem)
	for _, m := range materiais {
		porCodigo[m.Codigo] = m
	}

	// 2 pedidos × kit: TAPETE 1×(2+1)=3, CORTINA 2×(2+1)=6; P2 não contribui.
	assert.True(t, porCodigo["TAPETE"].Quantidade.Equal(dec("3")))
	assert.True(t, porCodigo["CORTINA"].Quantidade.Equal(dec("6")))
	assert.Equal(t, 2, porCodigo["TAPETE"].QtdPedidos)
	assert.Equal(t, 2, porCodigo["CORTINA"].QtdPedidos)
}
