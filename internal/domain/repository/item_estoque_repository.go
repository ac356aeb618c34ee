package repository

import (
	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// ItemEstoqueRepository define o porto de persistência para ItemEstoque (DIP).
// Os cálculos de planejamento carregam o catálogo inteiro via ListByEmpresa
// (catálogos são pequenos, centenas de itens) e tratam o snapshot como imutável.
type ItemEstoqueRepository interface {
	Create(item *entity.ItemEstoque) error
	GetByID(id string) (*entity.ItemEstoque, error)
	GetByCodigo(empresaID, codigo string) (*entity.ItemEstoque, error)
	Update(item *entity.ItemEstoque) error
	UpdateQuantidade(empresaID, codigo string, delta decimal.Decimal) error
	ListByEmpresa(empresaID string) ([]*entity.ItemEstoque, error)
	Delete(id string) error
}
