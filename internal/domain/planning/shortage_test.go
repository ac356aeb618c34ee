package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
)

func insumoPorCodigo(t *testing.T, insumos []planning.InsumoNecessario, codigo string) planning.InsumoNecessario {
	t.Helper()
	for _, i := range insumos {
		if i.Codigo == codigo {
			return i
		}
	}
	t.Fatalf("insumo %s não encontrado", codigo)
	return planning.InsumoNecessario{}
}

// TestCalcularInsumosNecessarios explosão sobre a produção necessária (não o
// histórico), déficit contra o estoque atual e data de compra retroativa.
func TestCalcularInsumosNecessarios(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("TINTA", entity.TipoInsumo, entity.UnidadeLitro, "3"),
			item("PAPEL", entity.TipoInsumo, entity.UnidadeMetro, "100"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("P1", linhaFicha("TINTA", "0.5"), linhaFicha("PAPEL", "2")),
		},
	)
	plano := []planning.ItemPlanoProducao{
		{Codigo: "P1", ProducaoNecessaria: 10},
		{Codigo: "P1-SEM-PRODUCAO", ProducaoNecessaria: 0}, // ignorado
	}
	hoje := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	insumos, err := planning.CalcularInsumosNecessarios(plano, cat, 7, hoje)
	require.NoError(t, err)
	require.Len(t, insumos, 2)

	tinta := insumoPorCodigo(t, insumos, "TINTA")
	assert.True(t, tinta.QtyNecessaria.Equal(dec("5")))
	assert.True(t, tinta.Deficit.Equal(dec("2")), "déficit: %s", tinta.Deficit)

	papel := insumoPorCodigo(t, insumos, "PAPEL")
	assert.True(t, papel.QtyNecessaria.Equal(dec("20")))
	assert.True(t, papel.Deficit.Equal(dec("-80")), "sobra vira déficit negativo: %s", papel.Deficit)

	// Maior déficit primeiro.
	assert.Equal(t, "TINTA", insumos[0].Codigo)

	// Data de compra retroativa: hoje - lead time, como no comportamento de origem.
	esperado := time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC)
	assert.True(t, tinta.ComprarAte.Equal(esperado), "comprar_ate: %s", tinta.ComprarAte)
	assert.Equal(t, 7, tinta.LeadTimeDias)
}

// TestCalcularInsumosNecessarios_ProdutoNaoEntra produto no meio da árvore
// fica fora do total de insumos; o processado recursa e acumula.
func TestCalcularInsumosNecessarios_ProdutoNaoEntra(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("KIT", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("P2", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("PROC1", entity.TipoProcessado, entity.UnidadeKg, "1"),
			item("RAW1", entity.TipoInsumo, entity.UnidadeKg, "0"),
		},
		nil,
		[]*entity.FichaTecnica{
			ficha("KIT", linhaFicha("P2", "1"), linhaFicha("PROC1", "2")),
			ficha("PROC1", linhaFicha("RAW1", "3")),
		},
	)
	plano := []planning.ItemPlanoProducao{{Codigo: "KIT", ProducaoNecessaria: 1}}

	insumos, err := planning.CalcularInsumosNecessarios(plano, cat, 0, time.Now())
	require.NoError(t, err)
	require.Len(t, insumos, 2)

	proc := insumoPorCodigo(t, insumos, "PROC1")
	assert.True(t, proc.QtyNecessaria.Equal(dec("2")))
	raw := insumoPorCodigo(t, insumos, "RAW1")
	assert.True(t, raw.QtyNecessaria.Equal(dec("6")))
}

// TestGerarPlanejamento fluxo completo: previsão → produção → insumos.
func TestGerarPlanejamento(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("TINTA", entity.TipoInsumo, entity.UnidadeLitro, "0"),
		},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		[]*entity.FichaTecnica{ficha("P1", linhaFicha("TINTA", "0.5"))},
	)
	pedidos := []*entity.PedidoItem{pedidoNoDia("PED-1", "ML-P1", "10", "2026-08-01")}
	params := entity.ParametrosPlanejamento{
		Modo:                entity.ModoManual,
		PeriodoPrevisaoDias: 3,
		LeadTimeDias:        5,
	}
	hoje := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	resultado, err := planning.GerarPlanejamento(pedidos, cat, params, hoje)
	require.NoError(t, err)

	require.Len(t, resultado.PlanoProducao, 1)
	assert.Equal(t, int64(30), resultado.PlanoProducao[0].ProducaoNecessaria)

	require.Len(t, resultado.InsumosNecessarios, 1)
	tinta := resultado.InsumosNecessarios[0]
	assert.Equal(t, "TINTA", tinta.Codigo)
	assert.True(t, tinta.QtyNecessaria.Equal(dec("15")))
}

// TestGerarPlanejamento_Idempotente duas execuções sobre o mesmo snapshot
// produzem saída idêntica.
func TestGerarPlanejamento_Idempotente(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("P1", entity.TipoProduto, entity.UnidadeUn, "2"),
			item("TINTA", entity.TipoInsumo, entity.UnidadeLitro, "1"),
		},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		[]*entity.FichaTecnica{ficha("P1", linhaFicha("TINTA", "0.5"))},
	)
	pedidos := []*entity.PedidoItem{pedidoNoDia("PED-1", "ML-P1", "9", "2026-08-01")}
	params := entity.ParametrosPlanejamento{Modo: entity.ModoManual, PeriodoPrevisaoDias: 4, LeadTimeDias: 2}
	hoje := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	a, err := planning.GerarPlanejamento(pedidos, cat, params, hoje)
	require.NoError(t, err)
	b, err := planning.GerarPlanejamento(pedidos, cat, params, hoje)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
