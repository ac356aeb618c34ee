package planning

import (
	"fmt"

	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// ValidarRegrasExpedicao valida um conjunto de faixas de embalagem no momento
// de salvar a configuração: faixas invertidas ou sobrepostas são erro de
// configuração aqui, nunca no cálculo (lá vale "a primeira que casar vence").
func ValidarRegrasExpedicao(regras []entity.RegraExpedicao) error {
	for i, regra := range regras {
		if regra.De > regra.Ate {
			return fmt.Errorf("%w: faixa %d tem de > ate (%d > %d)",
				domain.ErrEntradaInvalida, i, regra.De, regra.Ate)
		}
		if regra.CodigoItem == "" {
			return fmt.Errorf("%w: faixa %d sem código de item", domain.ErrEntradaInvalida, i)
		}
		for j := i + 1; j < len(regras); j++ {
			outra := regras[j]
			if regra.De <= outra.Ate && outra.De <= regra.Ate {
				return fmt.Errorf("%w: faixas %d e %d ([%d,%d] e [%d,%d])",
					domain.ErrRegrasSobrepostas, i, j, regra.De, regra.Ate, outra.De, outra.Ate)
			}
		}
	}
	return nil
}

// ValidarFicha impede autorreferência direta da ficha (o item não pode conter
// o próprio produto). Ciclos indiretos são detectados na explosão.
func ValidarFicha(ficha *entity.FichaTecnica) error {
	for _, item := range ficha.Itens {
		if item.CodigoComponente == ficha.ProdutoSku {
			return fmt.Errorf("%w: a ficha de %s contém o próprio produto",
				domain.ErrEntradaInvalida, ficha.ProdutoSku)
		}
	}
	return nil
}
