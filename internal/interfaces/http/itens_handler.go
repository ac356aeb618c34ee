package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/catalogo"
	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// ItensHandler CRUD de itens de estoque.
type ItensHandler struct {
	uc *catalogo.ItensUseCase
}

// NewItensHandler constrói o handler de itens.
func NewItensHandler(uc *catalogo.ItensUseCase) *ItensHandler {
	return &ItensHandler{uc: uc}
}

// Create cria um item de catálogo.
func (h *ItensHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo, nome, tipo e unidade são obrigatórios e devem ser válidos"})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe um item com esse código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List devolve o catálogo da empresa.
func (h *ItensHandler) List(c *fiber.Ctx) error {
	itens, err := h.uc.List(GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(itens)
}

// GetByCodigo busca um item pelo código de negócio.
func (h *ItensHandler) GetByCodigo(c *fiber.Ctx) error {
	item, err := h.uc.GetByCodigo(GetEmpresaID(c), c.Params("codigo"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}

// Update edita os dados cadastrais de um item.
func (h *ItensHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateItemEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.uc.Update(GetEmpresaID(c), c.Params("codigo"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo ou unidade inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}

// Ajustar aplica um delta à quantidade em estoque de um item.
func (h *ItensHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjusteEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo é obrigatório"})
	}
	if err := h.uc.Ajustar(GetEmpresaID(c), in); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
