package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/application/reportes"
)

// StockHandler maneja el tablero de stock.
type StockHandler struct {
	uc *reportes.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *reportes.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Resumen devuelve los contadores del tablero. GET /api/stock/resumen
func (h *StockHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.uc.Resumen(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ResumenStockResponse{
		Total:     resumen.Total,
		BajoStock: resumen.BajoStock,
		SinStock:  resumen.SinStock,
	})
}

// PesoNeto devuelve el peso neto acumulado de un producto pesable.
// GET /api/productos/:id/peso-neto
func (h *StockHandler) PesoNeto(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	neto, err := h.uc.PesoNeto(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.PesoNetoResponse{ProductoID: id, PesoNetoKg: neto})
}
