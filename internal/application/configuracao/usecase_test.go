package configuracao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfila/fulfila-api/internal/application/configuracao"
	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

type configRepoFake struct {
	salva *entity.Configuracao
}

func (r *configRepoFake) GetByEmpresa(empresaID string) (*entity.Configuracao, error) {
	if r.salva == nil {
		return &entity.Configuracao{EmpresaID: empresaID}, nil
	}
	return r.salva, nil
}

func (r *configRepoFake) Save(config *entity.Configuracao) error {
	r.salva = config
	return nil
}

func regra(de, ate int, codigo string) entity.RegraExpedicao {
	return entity.RegraExpedicao{De: de, Ate: ate, CodigoItem: codigo, Quantidade: decimal.NewFromInt(1)}
}

func TestSave_RejeitaFaixasSobrepostas(t *testing.T) {
	repo := &configRepoFake{}
	uc := configuracao.NewConfiguracaoUseCase(repo)

	_, err := uc.Save("empresa-1", dto.ConfiguracaoRequest{
		Expedicao: entity.ConfigExpedicao{
			RegrasPapelParede: []entity.RegraExpedicao{
				regra(1, 5, "CAIXA-P"),
				regra(5, 10, "CAIXA-M"), // 5 cai nas duas faixas
			},
		},
	})
	assert.ErrorIs(t, err, domain.ErrRegrasSobrepostas)
	assert.Nil(t, repo.salva, "configuração inválida não deve ser persistida")
}

func TestSave_ValidaOsDoisConjuntosDeRegras(t *testing.T) {
	uc := configuracao.NewConfiguracaoUseCase(&configRepoFake{})

	_, err := uc.Save("empresa-1", dto.ConfiguracaoRequest{
		Expedicao: entity.ConfigExpedicao{
			RegrasPapelParede: []entity.RegraExpedicao{regra(1, 5, "CAIXA-P")},
			RegrasMiudos: []entity.RegraExpedicao{
				regra(1, 3, "SACO-P"),
				regra(2, 6, "SACO-M"),
			},
		},
	})
	assert.ErrorIs(t, err, domain.ErrRegrasSobrepostas)
}

func TestSave_GravaConfiguracaoValida(t *testing.T) {
	repo := &configRepoFake{}
	uc := configuracao.NewConfiguracaoUseCase(repo)

	cfg, err := uc.Save("empresa-1", dto.ConfiguracaoRequest{
		Expedicao: entity.ConfigExpedicao{
			RegrasPapelParede: []entity.RegraExpedicao{
				regra(1, 5, "CAIXA-P"),
				regra(6, 10, "CAIXA-M"),
			},
		},
		Geral: entity.ConfigGeral{CoresBase: map[string]string{"PAPEL-AZUL": "azul"}},
		Planejamento: entity.ParametrosPlanejamento{
			Modo:                entity.ModoAutomatico,
			PeriodoAnaliseDias:  30,
			PeriodoPrevisaoDias: 15,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "empresa-1", cfg.EmpresaID)
	assert.False(t, cfg.UpdatedAt.IsZero())
	require.NotNil(t, repo.salva)
	assert.Equal(t, 30, repo.salva.Planejamento.PeriodoAnaliseDias)

	lida, err := uc.Get("empresa-1")
	require.NoError(t, err)
	assert.Equal(t, "azul", lida.Geral.CoresBase["PAPEL-AZUL"])
}
