package repository

import "github.com/fulfila/fulfila-api/internal/domain/entity"

// ConfiguracaoRepository define o porto de persistência para Configuracao (DIP).
// GetByEmpresa devolve configuração zerada (não nil) quando nada foi salvo.
type ConfiguracaoRepository interface {
	GetByEmpresa(empresaID string) (*entity.Configuracao, error)
	Save(config *entity.Configuracao) error
}
