package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/application/pedidos"
	"github.com/fulfila/fulfila-api/internal/domain"
)

// PedidosHandler importação e consulta de pedidos.
type PedidosHandler struct {
	uc *pedidos.PedidosUseCase
}

// NewPedidosHandler constrói o handler de pedidos.
func NewPedidosHandler(uc *pedidos.PedidosUseCase) *PedidosHandler {
	return &PedidosHandler{uc: uc}
}

// Importar recebe a planilha (multipart, campo "arquivo") e o canal na query.
func (h *PedidosHandler) Importar(c *fiber.Ctx) error {
	canal := strings.ToUpper(c.Query("canal"))
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "arquivo da planilha é obrigatório (campo multipart 'arquivo')"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível abrir o arquivo"})
	}
	defer file.Close()

	out, err := h.uc.Importar(GetEmpresaID(c), canal, file)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "canal inválido: usar ML, SHOPEE ou SITE"})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devolve linhas de pedido paginadas.
func (h *PedidosHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	itens, err := h.uc.List(GetEmpresaID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(itens)
}

// Delete remove todas as linhas de um pedido.
func (h *PedidosHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("pedidoID")); err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pedidoID é obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
