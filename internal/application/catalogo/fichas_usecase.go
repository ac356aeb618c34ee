package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// FichasUseCase manutenção de fichas técnicas (receitas de produto).
type FichasUseCase struct {
	fichaRepo repository.FichaTecnicaRepository
	itemRepo  repository.ItemEstoqueRepository
}

// NewFichasUseCase constrói o caso de uso.
func NewFichasUseCase(fichaRepo repository.FichaTecnicaRepository, itemRepo repository.ItemEstoqueRepository) *FichasUseCase {
	return &FichasUseCase{fichaRepo: fichaRepo, itemRepo: itemRepo}
}

// Upsert grava a ficha de um produto, substituindo os itens anteriores.
// O produto precisa existir no catálogo; autorreferência é rejeitada.
func (uc *FichasUseCase) Upsert(empresaID string, in dto.UpsertFichaRequest) (*dto.FichaResponse, error) {
	if in.ProdutoSku == "" || len(in.Itens) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	produto, err := uc.itemRepo.GetByCodigo(empresaID, in.ProdutoSku)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	now := time.Now()
	ficha := &entity.FichaTecnica{
		ID:         uuid.New().String(),
		EmpresaID:  empresaID,
		ProdutoSku: in.ProdutoSku,
		Itens:      in.Itens,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := planning.ValidarFicha(ficha); err != nil {
		return nil, err
	}
	if err := uc.fichaRepo.Upsert(ficha); err != nil {
		return nil, err
	}
	return toFichaResponse(ficha), nil
}

// GetByProdutoSku devolve a ficha de um produto.
func (uc *FichasUseCase) GetByProdutoSku(empresaID, produtoSku string) (*dto.FichaResponse, error) {
	ficha, err := uc.fichaRepo.GetByProdutoSku(empresaID, produtoSku)
	if err != nil {
		return nil, err
	}
	if ficha == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toFichaResponse(ficha), nil
}

// List devolve todas as fichas da empresa.
func (uc *FichasUseCase) List(empresaID string) ([]*dto.FichaResponse, error) {
	fichas, err := uc.fichaRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FichaResponse, 0, len(fichas))
	for _, f := range fichas {
		out = append(out, toFichaResponse(f))
	}
	return out, nil
}

// Delete remove a ficha de um produto.
func (uc *FichasUseCase) Delete(empresaID, produtoSku string) error {
	return uc.fichaRepo.DeleteByProdutoSku(empresaID, produtoSku)
}

func toFichaResponse(f *entity.FichaTecnica) *dto.FichaResponse {
	return &dto.FichaResponse{
		ProdutoSku: f.ProdutoSku,
		Itens:      f.Itens,
		UpdatedAt:  f.UpdatedAt,
	}
}
