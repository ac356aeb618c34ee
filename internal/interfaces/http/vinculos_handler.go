package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/catalogo"
	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// VinculosHandler conciliação de SKUs importados.
type VinculosHandler struct {
	uc *catalogo.VinculosUseCase
}

// NewVinculosHandler constrói o handler de vínculos.
func NewVinculosHandler(uc *catalogo.VinculosUseCase) *VinculosHandler {
	return &VinculosHandler{uc: uc}
}

// Upsert grava um vínculo SKU importado -> SKU master.
func (h *VinculosHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertVinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	vinculo, err := h.uc.Upsert(GetEmpresaID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku_importado e sku_master são obrigatórios"})
		}
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "o SKU master não existe no catálogo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(vinculo)
}

// List devolve todos os vínculos da empresa.
func (h *VinculosHandler) List(c *fiber.Ctx) error {
	vinculos, err := h.uc.List(GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(vinculos)
}

// Delete remove o vínculo de um SKU importado.
func (h *VinculosHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("skuImportado")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
