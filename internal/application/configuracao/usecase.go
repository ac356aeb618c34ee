package configuracao

import (
	"time"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/planning"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// ConfiguracaoUseCase leitura e gravação da configuração da empresa.
// A validação das regras de expedição acontece aqui, ao salvar: o cálculo de
// materiais assume faixas já saneadas.
type ConfiguracaoUseCase struct {
	repo repository.ConfiguracaoRepository
}

// NewConfiguracaoUseCase constrói o caso de uso.
func NewConfiguracaoUseCase(repo repository.ConfiguracaoRepository) *ConfiguracaoUseCase {
	return &ConfiguracaoUseCase{repo: repo}
}

// Get devolve a configuração da empresa (zerada quando nunca foi salva).
func (uc *ConfiguracaoUseCase) Get(empresaID string) (*entity.Configuracao, error) {
	return uc.repo.GetByEmpresa(empresaID)
}

// Save valida e grava a configuração completa da empresa.
func (uc *ConfiguracaoUseCase) Save(empresaID string, in dto.ConfiguracaoRequest) (*entity.Configuracao, error) {
	if err := planning.ValidarRegrasExpedicao(in.Expedicao.RegrasPapelParede); err != nil {
		return nil, err
	}
	if err := planning.ValidarRegrasExpedicao(in.Expedicao.RegrasMiudos); err != nil {
		return nil, err
	}
	cfg := &entity.Configuracao{
		EmpresaID:    empresaID,
		Expedicao:    in.Expedicao,
		Geral:        in.Geral,
		Planejamento: in.Planejamento,
		UpdatedAt:    time.Now(),
	}
	if err := uc.repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
