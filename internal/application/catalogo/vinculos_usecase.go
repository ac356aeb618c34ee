package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// VinculosUseCase conciliação SKU importado -> SKU master.
type VinculosUseCase struct {
	vinculoRepo repository.VinculoSkuRepository
	itemRepo    repository.ItemEstoqueRepository
}

// NewVinculosUseCase constrói o caso de uso.
func NewVinculosUseCase(vinculoRepo repository.VinculoSkuRepository, itemRepo repository.ItemEstoqueRepository) *VinculosUseCase {
	return &VinculosUseCase{vinculoRepo: vinculoRepo, itemRepo: itemRepo}
}

// Upsert grava um vínculo. O SKU master precisa existir no catálogo; o último
// vínculo gravado para um SKU importado vence.
func (uc *VinculosUseCase) Upsert(empresaID string, in dto.UpsertVinculoRequest) (*dto.VinculoResponse, error) {
	if in.SkuImportado == "" || in.SkuMaster == "" {
		return nil, domain.ErrEntradaInvalida
	}
	master, err := uc.itemRepo.GetByCodigo(empresaID, in.SkuMaster)
	if err != nil {
		return nil, err
	}
	if master == nil {
		return nil, domain.ErrNaoEncontrado
	}
	vinculo := &entity.VinculoSku{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		SkuImportado: in.SkuImportado,
		SkuMaster:    in.SkuMaster,
		CreatedAt:    time.Now(),
	}
	if err := uc.vinculoRepo.Upsert(vinculo); err != nil {
		return nil, err
	}
	return toVinculoResponse(vinculo), nil
}

// List devolve todos os vínculos da empresa.
func (uc *VinculosUseCase) List(empresaID string) ([]*dto.VinculoResponse, error) {
	vinculos, err := uc.vinculoRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VinculoResponse, 0, len(vinculos))
	for _, v := range vinculos {
		out = append(out, toVinculoResponse(v))
	}
	return out, nil
}

// Delete remove o vínculo de um SKU importado.
func (uc *VinculosUseCase) Delete(empresaID, skuImportado string) error {
	return uc.vinculoRepo.DeleteBySkuImportado(empresaID, skuImportado)
}

func toVinculoResponse(v *entity.VinculoSku) *dto.VinculoResponse {
	return &dto.VinculoResponse{
		SkuImportado: v.SkuImportado,
		SkuMaster:    v.SkuMaster,
		CreatedAt:    v.CreatedAt,
	}
}
