package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// ItensUseCase CRUD de itens de estoque (insumos, produtos, processados).
// Movimentações de quantidade passam por Ajustar, nunca por Update.
type ItensUseCase struct {
	repo repository.ItemEstoqueRepository
}

// NewItensUseCase constrói o caso de uso.
func NewItensUseCase(repo repository.ItemEstoqueRepository) *ItensUseCase {
	return &ItensUseCase{repo: repo}
}

func tipoValido(tipo string) bool {
	switch entity.TipoItem(tipo) {
	case entity.TipoInsumo, entity.TipoProduto, entity.TipoProcessado:
		return true
	}
	return false
}

func unidadeValida(unidade string) bool {
	switch unidade {
	case entity.UnidadeKg, entity.UnidadeUn, entity.UnidadeMetro, entity.UnidadeLitro:
		return true
	}
	return false
}

// Create cria um item de catálogo. Codigo é a chave de negócio, única por empresa.
func (uc *ItensUseCase) Create(empresaID string, in dto.CreateItemEstoqueRequest) (*dto.ItemEstoqueResponse, error) {
	if in.Codigo == "" || in.Nome == "" || !tipoValido(in.Tipo) || !unidadeValida(in.Unidade) {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.repo.GetByCodigo(empresaID, in.Codigo)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	composicao := in.Composicao
	if composicao == "" {
		composicao = entity.ComposicaoSimples
	}
	now := time.Now()
	item := &entity.ItemEstoque{
		ID:               uuid.New().String(),
		EmpresaID:        empresaID,
		Codigo:           in.Codigo,
		Nome:             in.Nome,
		Tipo:             entity.TipoItem(in.Tipo),
		Unidade:          in.Unidade,
		QuantidadeAtual:  in.QuantidadeAtual,
		QuantidadeMinima: in.QuantidadeMinima,
		Composicao:       composicao,
		CodigoSubstituto: in.CodigoSubstituto,
		ItensExpedicao:   in.ItensExpedicao,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByCodigo busca um item pelo código de negócio.
func (uc *ItensUseCase) GetByCodigo(empresaID, codigo string) (*dto.ItemEstoqueResponse, error) {
	item, err := uc.repo.GetByCodigo(empresaID, codigo)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toItemResponse(item), nil
}

// Update edita os dados cadastrais de um item. Quantidade não passa por aqui.
func (uc *ItensUseCase) Update(empresaID, codigo string, in dto.CreateItemEstoqueRequest) (*dto.ItemEstoqueResponse, error) {
	item, err := uc.repo.GetByCodigo(empresaID, codigo)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		item.Nome = in.Nome
	}
	if in.Tipo != "" {
		if !tipoValido(in.Tipo) {
			return nil, domain.ErrEntradaInvalida
		}
		item.Tipo = entity.TipoItem(in.Tipo)
	}
	if in.Unidade != "" {
		if !unidadeValida(in.Unidade) {
			return nil, domain.ErrEntradaInvalida
		}
		item.Unidade = in.Unidade
	}
	if in.Composicao != "" {
		item.Composicao = in.Composicao
	}
	item.QuantidadeMinima = in.QuantidadeMinima
	item.CodigoSubstituto = in.CodigoSubstituto
	item.ItensExpedicao = in.ItensExpedicao
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Ajustar aplica um delta (com sinal) à quantidade atual de um item.
func (uc *ItensUseCase) Ajustar(empresaID string, in dto.AjusteEstoqueRequest) error {
	item, err := uc.repo.GetByCodigo(empresaID, in.Codigo)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.UpdateQuantidade(empresaID, in.Codigo, in.Delta)
}

// List devolve todos os itens da empresa (catálogos são pequenos).
func (uc *ItensUseCase) List(empresaID string) ([]*dto.ItemEstoqueResponse, error) {
	itens, err := uc.repo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemEstoqueResponse, 0, len(itens))
	for _, item := range itens {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

func toItemResponse(i *entity.ItemEstoque) *dto.ItemEstoqueResponse {
	return &dto.ItemEstoqueResponse{
		ID:               i.ID,
		Codigo:           i.Codigo,
		Nome:             i.Nome,
		Tipo:             string(i.Tipo),
		Unidade:          i.Unidade,
		QuantidadeAtual:  i.QuantidadeAtual,
		QuantidadeMinima: i.QuantidadeMinima,
		Composicao:       i.Composicao,
		CodigoSubstituto: i.CodigoSubstituto,
		ItensExpedicao:   i.ItensExpedicao,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}
