package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/catalogo"
	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos (protegido).
type ProductoHandler struct {
	uc *catalogo.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *catalogo.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear crea un producto; código vacío se autoasigna. POST /api/productos
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ObtenerPorID obtiene un producto (también inactivos). GET /api/productos/:id
func (h *ProductoHandler) ObtenerPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Listar lista productos filtrados. GET /api/productos?categoria_id=&q=&incluir_inactivos=
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.FiltroProductos{
		CategoriaID:      c.Query("categoria_id"),
		Texto:            c.Query("q"),
		IncluirInactivos: c.QueryBool("incluir_inactivos", false),
	}
	out, err := h.uc.Listar(filtro)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Actualizar actualiza un producto (patch parcial, nunca stock). PUT /api/productos/:id
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Desactivar aplica la baja lógica. DELETE /api/productos/:id
func (h *ProductoHandler) Desactivar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Desactivar(id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SugerirCodigo devuelve el siguiente código disponible. GET /api/productos/sugerir-codigo
func (h *ProductoHandler) SugerirCodigo(c *fiber.Ctx) error {
	codigo, err := h.uc.SugerirCodigo()
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"codigo": codigo})
}
