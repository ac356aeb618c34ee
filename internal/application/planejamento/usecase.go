package planejamento

import (
	"time"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// PlanejamentoUseCase orquestra os cálculos de planejamento: carrega o
// snapshot do catálogo, monta o índice e delega ao motor de domínio.
type PlanejamentoUseCase struct {
	itemRepo    repository.ItemEstoqueRepository
	vinculoRepo repository.VinculoSkuRepository
	fichaRepo   repository.FichaTecnicaRepository
	pedidoRepo  repository.PedidoRepository
	configRepo  repository.ConfiguracaoRepository
}

// NewPlanejamentoUseCase constrói o caso de uso.
func NewPlanejamentoUseCase(
	itemRepo repository.ItemEstoqueRepository,
	vinculoRepo repository.VinculoSkuRepository,
	fichaRepo repository.FichaTecnicaRepository,
	pedidoRepo repository.PedidoRepository,
	configRepo repository.ConfiguracaoRepository,
) *PlanejamentoUseCase {
	return &PlanejamentoUseCase{
		itemRepo:    itemRepo,
		vinculoRepo: vinculoRepo,
		fichaRepo:   fichaRepo,
		pedidoRepo:  pedidoRepo,
		configRepo:  configRepo,
	}
}

// carregarCatalogo monta o índice de consulta a partir do estado atual.
func (uc *PlanejamentoUseCase) carregarCatalogo(empresaID string) (*planning.Catalog, error) {
	itens, err := uc.itemRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	vinculos, err := uc.vinculoRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	fichas, err := uc.fichaRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	return planning.NewCatalog(itens, vinculos, fichas), nil
}

// janela converte o par de datas da query em limites absolutos.
// De vazio abre a janela desde o início; Ate vazio fecha em hoje (fim do dia).
func janela(in dto.JanelaRequest, hoje time.Time) (time.Time, time.Time, error) {
	var de time.Time
	if in.De != "" {
		t, err := time.Parse("2006-01-02", in.De)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrEntradaInvalida
		}
		de = t
	}
	ate := hoje
	if in.Ate != "" {
		t, err := time.Parse("2006-01-02", in.Ate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrEntradaInvalida
		}
		ate = t
	}
	ate = ate.AddDate(0, 0, 1).Add(-time.Nanosecond)
	if in.De != "" && ate.Before(de) {
		return time.Time{}, time.Time{}, domain.ErrEntradaInvalida
	}
	return de, ate, nil
}

// Materiais calcula a lista agregada de materiais para os pedidos da janela.
func (uc *PlanejamentoUseCase) Materiais(empresaID string, in dto.JanelaRequest) (*planning.ResultadoMateriais, error) {
	de, ate, err := janela(in, time.Now())
	if err != nil {
		return nil, err
	}
	pedidos, err := uc.pedidoRepo.ListByJanela(empresaID, de, ate)
	if err != nil {
		return nil, err
	}
	cat, err := uc.carregarCatalogo(empresaID)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.configRepo.GetByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	return planning.CalculateMaterialList(pedidos, cat, cfg.Expedicao, cfg.Geral)
}

// ComponentesKit calcula a visão rasa de componentes de kit da janela.
func (uc *PlanejamentoUseCase) ComponentesKit(empresaID string, in dto.JanelaRequest) ([]planning.MaterialItem, error) {
	de, ate, err := janela(in, time.Now())
	if err != nil {
		return nil, err
	}
	pedidos, err := uc.pedidoRepo.ListByJanela(empresaID, de, ate)
	if err != nil {
		return nil, err
	}
	cat, err := uc.carregarCatalogo(empresaID)
	if err != nil {
		return nil, err
	}
	return planning.CalculateKitComponents(pedidos, cat), nil
}

// Plano gera o plano de produção e os insumos necessários. Parâmetros não
// informados na requisição caem nos valores salvos na configuração.
func (uc *PlanejamentoUseCase) Plano(empresaID string, in dto.PlanejamentoRequest) (*planning.ResultadoPlanejamento, error) {
	cfg, err := uc.configRepo.GetByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	params := mesclarParametros(cfg.Planejamento, in)
	if params.Modo != entity.ModoAutomatico && params.Modo != entity.ModoManual {
		return nil, domain.ErrEntradaInvalida
	}
	if params.PeriodoAnaliseDias <= 0 || params.PeriodoPrevisaoDias <= 0 {
		return nil, domain.ErrEntradaInvalida
	}

	hoje := time.Now()
	de := hoje.AddDate(0, 0, -params.PeriodoAnaliseDias)
	pedidos, err := uc.pedidoRepo.ListByJanela(empresaID, de, hoje)
	if err != nil {
		return nil, err
	}
	cat, err := uc.carregarCatalogo(empresaID)
	if err != nil {
		return nil, err
	}
	return planning.GerarPlanejamento(pedidos, cat, params, hoje)
}

// mesclarParametros aplica a requisição por cima dos parâmetros salvos;
// campo a campo, zero/nil mantém o valor salvo.
func mesclarParametros(base entity.ParametrosPlanejamento, in dto.PlanejamentoRequest) entity.ParametrosPlanejamento {
	out := base
	if in.Modo != "" {
		out.Modo = in.Modo
	}
	if out.Modo == "" {
		out.Modo = entity.ModoAutomatico
	}
	if in.PeriodoAnaliseDias > 0 {
		out.PeriodoAnaliseDias = in.PeriodoAnaliseDias
	}
	if in.PeriodoPrevisaoDias > 0 {
		out.PeriodoPrevisaoDias = in.PeriodoPrevisaoDias
	}
	if in.EstoqueSegurancaDias > 0 {
		out.EstoqueSegurancaDias = in.EstoqueSegurancaDias
	}
	if in.LeadTimeDias > 0 {
		out.LeadTimeDias = in.LeadTimeDias
	}
	if in.DiasPico != nil {
		out.DiasPico = in.DiasPico
	}
	if in.MultiplicadorPromocao != nil {
		out.MultiplicadorPromocao = *in.MultiplicadorPromocao
	}
	return out
}
