package repository

import "github.com/fulfila/fulfila-api/internal/domain/entity"

// FichaTecnicaRepository define o porto de persistência para FichaTecnica (DIP).
// Uma ficha por ProdutoSku (1:1); Upsert substitui os itens por completo.
type FichaTecnicaRepository interface {
	Upsert(ficha *entity.FichaTecnica) error
	GetByProdutoSku(empresaID, produtoSku string) (*entity.FichaTecnica, error)
	ListByEmpresa(empresaID string) ([]*entity.FichaTecnica, error)
	DeleteByProdutoSku(empresaID, produtoSku string) error
}
