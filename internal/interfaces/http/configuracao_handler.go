package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/configuracao"
	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// ConfiguracaoHandler leitura e gravação da configuração da empresa.
type ConfiguracaoHandler struct {
	uc *configuracao.ConfiguracaoUseCase
}

// NewConfiguracaoHandler constrói o handler de configuração.
func NewConfiguracaoHandler(uc *configuracao.ConfiguracaoUseCase) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{uc: uc}
}

// Get devolve a configuração da empresa (zerada quando nunca foi salva).
func (h *ConfiguracaoHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.uc.Get(GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}

// Save valida e grava a configuração completa.
func (h *ConfiguracaoHandler) Save(c *fiber.Ctx) error {
	var in dto.ConfiguracaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cfg, err := h.uc.Save(GetEmpresaID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrRegrasSobrepostas) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "OVERLAPPING_RULES", Message: "faixas de expedição sobrepostas"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "regra de expedição inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}
