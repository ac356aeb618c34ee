package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/catalogo"
	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// FichasHandler manutenção de fichas técnicas.
type FichasHandler struct {
	uc *catalogo.FichasUseCase
}

// NewFichasHandler constrói o handler de fichas.
func NewFichasHandler(uc *catalogo.FichasUseCase) *FichasHandler {
	return &FichasHandler{uc: uc}
}

// Upsert grava a ficha de um produto, substituindo a anterior.
func (h *FichasHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertFichaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	ficha, err := h.uc.Upsert(GetEmpresaID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "produto_sku e itens são obrigatórios; ficha não pode referenciar o próprio produto"})
		}
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "o produto não existe no catálogo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(ficha)
}

// List devolve todas as fichas da empresa.
func (h *FichasHandler) List(c *fiber.Ctx) error {
	fichas, err := h.uc.List(GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fichas)
}

// GetByProdutoSku devolve a ficha de um produto.
func (h *FichasHandler) GetByProdutoSku(c *fiber.Ctx) error {
	ficha, err := h.uc.GetByProdutoSku(GetEmpresaID(c), c.Params("produtoSku"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ficha não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(ficha)
}

// Delete remove a ficha de um produto.
func (h *FichasHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("produtoSku")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
