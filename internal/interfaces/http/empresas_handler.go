package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/application/empresa"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// EmpresasHandler cadastro de empresas.
type EmpresasHandler struct {
	uc *empresa.EmpresaUseCase
}

// NewEmpresasHandler constrói o handler de empresas.
func NewEmpresasHandler(uc *empresa.EmpresaUseCase) *EmpresasHandler {
	return &EmpresasHandler{uc: uc}
}

type createEmpresaRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// Create cadastra uma empresa.
func (h *EmpresasHandler) Create(c *fiber.Ctx) error {
	var in createEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in.Nome, in.CNPJ, in.Endereco, in.Telefone, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "empresa já cadastrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca uma empresa.
func (h *EmpresasHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List lista empresas.
func (h *EmpresasHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
