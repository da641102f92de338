package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/catalogo"
	"github.com/lycoris/control-stock/internal/application/dto"
)

// CategoriaHandler maneja las peticiones HTTP del catálogo de categorías (protegido).
type CategoriaHandler struct {
	uc *catalogo.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *catalogo.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Crear crea una categoría. POST /api/categorias
func (h *CategoriaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar lista las categorías. GET /api/categorias?incluir_inactivas=true
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	incluirInactivas := c.QueryBool("incluir_inactivas", false)
	out, err := h.uc.Listar(incluirInactivas)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Actualizar actualiza una categoría (patch parcial). PUT /api/categorias/:id
func (h *CategoriaHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActualizarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Desactivar aplica la baja lógica. DELETE /api/categorias/:id
func (h *CategoriaHandler) Desactivar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Desactivar(id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
