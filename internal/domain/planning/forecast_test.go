package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
)

func pedidoNoDia(pedidoID, sku, qty, data string) *entity.PedidoItem {
	p := pedido(pedidoID, sku, qty)
	p.Data = data
	return p
}

func planoPorCodigo(t *testing.T, plano []planning.ItemPlanoProducao, codigo string) planning.ItemPlanoProducao {
	t.Helper()
	for _, item := range plano {
		if item.Codigo == codigo {
			return item
		}
	}
	t.Fatalf("produto %s não encontrado no plano", codigo)
	return planning.ItemPlanoProducao{}
}

// TestGerarPlanoProducao_Manual modo manual: média sobre todos os dias de
// venda, uplift percentual fixo.
func TestGerarPlanoProducao_Manual(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("P1", entity.TipoProduto, entity.UnidadeUn, "0")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	// 2 dias de venda: 10 e 20 unidades → média 15/dia.
	pedidos := []*entity.PedidoItem{
		pedidoNoDia("PED-1", "ML-P1", "10", "2026-08-01"),
		pedidoNoDia("PED-2", "ML-P1", "20", "2026-08-02"),
	}
	params := entity.ParametrosPlanejamento{
		Modo:                  entity.ModoManual,
		PeriodoPrevisaoDias:   10,
		EstoqueSegurancaDias:  0,
		MultiplicadorPromocao: dec("20"), // +20%
	}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	p1 := planoPorCodigo(t, plano, "P1")

	assert.True(t, p1.MediaVendasDia.Equal(dec("15")), "média: %s", p1.MediaVendasDia)
	// 15 × 10 × 1.2 = 180
	assert.True(t, p1.DemandaPrevista.Equal(dec("180")), "demanda: %s", p1.DemandaPrevista)
	assert.Equal(t, int64(180), p1.ProducaoNecessaria)
	assert.Equal(t, planning.MotivoSemEstoque, p1.Motivo)
}

// TestGerarPlanoProducao_AutomaticoSegregaPico no modo automático os dias de
// pico saem da base e viram multiplicador inferido (razão das médias).
func TestGerarPlanoProducao_AutomaticoSegregaPico(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("P1", entity.TipoProduto, entity.UnidadeUn, "0")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	// Dias normais: 10 e 10 (média 10). Dia de pico: 30 (média 30).
	// Multiplicador inferido = 30/10 = 3; base por produto = 10/dia.
	pedidos := []*entity.PedidoItem{
		pedidoNoDia("PED-1", "ML-P1", "10", "2026-08-01"),
		pedidoNoDia("PED-2", "ML-P1", "10", "2026-08-02"),
		pedidoNoDia("PED-3", "ML-P1", "30", "2026-08-03"),
	}
	params := entity.ParametrosPlanejamento{
		Modo:                entity.ModoAutomatico,
		PeriodoPrevisaoDias: 7,
		DiasPico:            []string{"2026-08-03"},
	}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	p1 := planoPorCodigo(t, plano, "P1")

	assert.True(t, p1.MediaVendasDia.Equal(dec("10")), "base deve excluir o pico: %s", p1.MediaVendasDia)
	// 10 × 7 × 3 = 210
	assert.True(t, p1.DemandaPrevista.Equal(dec("210")), "demanda: %s", p1.DemandaPrevista)
}

// TestGerarPlanoProducao_MultiplicadorNuncaMenorQueUm mesmo com pico mais
// fraco que o normal, o multiplicador não reduz a previsão.
func TestGerarPlanoProducao_MultiplicadorNuncaMenorQueUm(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("P1", entity.TipoProduto, entity.UnidadeUn, "0")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	pedidos := []*entity.PedidoItem{
		pedidoNoDia("PED-1", "ML-P1", "20", "2026-08-01"),
		pedidoNoDia("PED-2", "ML-P1", "5", "2026-08-02"), // pico "fraco"
	}
	params := entity.ParametrosPlanejamento{
		Modo:                entity.ModoAutomatico,
		PeriodoPrevisaoDias: 10,
		DiasPico:            []string{"2026-08-02"},
	}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	p1 := planoPorCodigo(t, plano, "P1")
	// Base 20/dia, multiplicador max(1, 5/20) = 1 → 20 × 10 = 200.
	assert.True(t, p1.DemandaPrevista.Equal(dec("200")), "demanda: %s", p1.DemandaPrevista)
}

// TestGerarPlanoProducao_Substituto estoque zerado mas substituto cobre a
// demanda: produção 0, motivo "usando estoque substituto".
func TestGerarPlanoProducao_Substituto(t *testing.T) {
	produto := item("P1", entity.TipoProduto, entity.UnidadeUn, "0")
	produto.CodigoSubstituto = "S1"
	cat := catalogo(
		[]*entity.ItemEstoque{produto, item("S1", entity.TipoProduto, entity.UnidadeUn, "50")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	// 1 dia de venda com 10 unidades; 3 dias de janela → demanda 30.
	pedidos := []*entity.PedidoItem{pedidoNoDia("PED-1", "ML-P1", "10", "2026-08-01")}
	params := entity.ParametrosPlanejamento{Modo: entity.ModoManual, PeriodoPrevisaoDias: 3}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	p1 := planoPorCodigo(t, plano, "P1")

	assert.True(t, p1.DemandaPrevista.Equal(dec("30")))
	assert.Equal(t, int64(0), p1.ProducaoNecessaria)
	assert.Equal(t, planning.MotivoEstoqueSubstituto, p1.Motivo)
	assert.True(t, p1.EstoqueSubstituto.Equal(dec("50")))
}

// TestGerarPlanoProducao_MonotoniaSeguranca aumentar o estoque de segurança
// nunca reduz a produção necessária de produto com venda positiva.
func TestGerarPlanoProducao_MonotoniaSeguranca(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("P1", entity.TipoProduto, entity.UnidadeUn, "12")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	pedidos := []*entity.PedidoItem{pedidoNoDia("PED-1", "ML-P1", "8", "2026-08-01")}

	anterior := int64(-1)
	for _, seguranca := range []int{0, 1, 3, 7, 15, 30} {
		params := entity.ParametrosPlanejamento{
			Modo:                 entity.ModoManual,
			PeriodoPrevisaoDias:  5,
			EstoqueSegurancaDias: seguranca,
		}
		plano := planning.GerarPlanoProducao(pedidos, cat, params)
		p1 := planoPorCodigo(t, plano, "P1")
		require.GreaterOrEqual(t, p1.ProducaoNecessaria, anterior,
			"produção caiu ao subir segurança para %d dias", seguranca)
		anterior = p1.ProducaoNecessaria
	}
}

// TestGerarPlanoProducao_DataMalformada linha com data ilegível não contribui.
func TestGerarPlanoProducao_DataMalformada(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("P1", entity.TipoProduto, entity.UnidadeUn, "0")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	pedidos := []*entity.PedidoItem{
		pedidoNoDia("PED-1", "ML-P1", "10", "2026-08-01"),
		pedidoNoDia("PED-2", "ML-P1", "999", "data-quebrada"),
	}
	params := entity.ParametrosPlanejamento{Modo: entity.ModoManual, PeriodoPrevisaoDias: 1}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	p1 := planoPorCodigo(t, plano, "P1")
	assert.True(t, p1.MediaVendasDia.Equal(dec("10")), "média: %s", p1.MediaVendasDia)
}

// TestGerarPlanoProducao_FormatosDeData formatos variados de planilha
// normalizam para o mesmo dia.
func TestGerarPlanoProducao_FormatosDeData(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{item("P1", entity.TipoProduto, entity.UnidadeUn, "0")},
		[]*entity.VinculoSku{vinculo("ML-P1", "P1")},
		nil,
	)
	// Três grafias do mesmo dia: um único dia de venda com 6 unidades.
	pedidos := []*entity.PedidoItem{
		pedidoNoDia("PED-1", "ML-P1", "1", "2026-08-01"),
		pedidoNoDia("PED-2", "ML-P1", "2", "01/08/2026"),
		pedidoNoDia("PED-3", "ML-P1", "3", "2026-08-01 14:30:00"),
	}
	params := entity.ParametrosPlanejamento{Modo: entity.ModoManual, PeriodoPrevisaoDias: 1}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	p1 := planoPorCodigo(t, plano, "P1")
	assert.True(t, p1.MediaVendasDia.Equal(dec("6")), "média: %s", p1.MediaVendasDia)
}

// TestGerarPlanoProducao_OrdenacaoPorProducao maior produção necessária primeiro.
func TestGerarPlanoProducao_OrdenacaoPorProducao(t *testing.T) {
	cat := catalogo(
		[]*entity.ItemEstoque{
			item("POUCO", entity.TipoProduto, entity.UnidadeUn, "0"),
			item("MUITO", entity.TipoProduto, entity.UnidadeUn, "0"),
		},
		[]*entity.VinculoSku{vinculo("ML-POUCO", "POUCO"), vinculo("ML-MUITO", "MUITO")},
		nil,
	)
	pedidos := []*entity.PedidoItem{
		pedidoNoDia("PED-1", "ML-POUCO", "1", "2026-08-01"),
		pedidoNoDia("PED-2", "ML-MUITO", "100", "2026-08-01"),
	}
	params := entity.ParametrosPlanejamento{Modo: entity.ModoManual, PeriodoPrevisaoDias: 5}

	plano := planning.GerarPlanoProducao(pedidos, cat, params)
	require.Len(t, plano, 2)
	assert.Equal(t, "MUITO", plano[0].Codigo)
	assert.Equal(t, "POUCO", plano[1].Codigo)
}
