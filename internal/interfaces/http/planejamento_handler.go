package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/application/planejamento"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// PlanejamentoHandler cálculos de materiais e plano de produção.
type PlanejamentoHandler struct {
	uc *planejamento.PlanejamentoUseCase
}

// NewPlanejamentoHandler constrói o handler de planejamento.
func NewPlanejamentoHandler(uc *planejamento.PlanejamentoUseCase) *PlanejamentoHandler {
	return &PlanejamentoHandler{uc: uc}
}

// Materiais devolve a lista agregada de materiais da janela de pedidos.
func (h *PlanejamentoHandler) Materiais(c *fiber.Ctx) error {
	var in dto.JanelaRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "janela inválida"})
	}
	out, err := h.uc.Materiais(GetEmpresaID(c), in)
	if err != nil {
		return h.erroCalculo(c, err)
	}
	return c.JSON(out)
}

// ComponentesKit devolve a visão rasa de componentes de kit da janela.
func (h *PlanejamentoHandler) ComponentesKit(c *fiber.Ctx) error {
	var in dto.JanelaRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "janela inválida"})
	}
	out, err := h.uc.ComponentesKit(GetEmpresaID(c), in)
	if err != nil {
		return h.erroCalculo(c, err)
	}
	return c.JSON(out)
}

// Plano gera o plano de produção e os insumos necessários.
func (h *PlanejamentoHandler) Plano(c *fiber.Ctx) error {
	var in dto.PlanejamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Plano(GetEmpresaID(c), in)
	if err != nil {
		return h.erroCalculo(c, err)
	}
	return c.JSON(out)
}

func (h *PlanejamentoHandler) erroCalculo(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetros inválidos"})
	}
	if errors.Is(err, domain.ErrFichaCiclica) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CYCLIC_BOM", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
