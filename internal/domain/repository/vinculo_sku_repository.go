package repository

import "github.com/fulfila/fulfila-api/internal/domain/entity"

// VinculoSkuRepository define o porto de persistência para VinculoSku (DIP).
type VinculoSkuRepository interface {
	Upsert(vinculo *entity.VinculoSku) error
	GetBySkuImportado(empresaID, skuImportado string) (*entity.VinculoSku, error)
	ListByEmpresa(empresaID string) ([]*entity.VinculoSku, error)
	DeleteBySkuImportado(empresaID, skuImportado string) error
}
