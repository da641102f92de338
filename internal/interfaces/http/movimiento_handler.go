package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/application/inventario"
	"github.com/lycoris/control-stock/internal/application/reportes"
	"github.com/lycoris/control-stock/internal/domain/entity"
)

// MovimientoHandler maneja el registro de movimientos y las consultas del libro de stock.
type MovimientoHandler struct {
	inventarioUC *inventario.UseCase
	reportesUC   *reportes.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(inventarioUC *inventario.UseCase, reportesUC *reportes.UseCase) *MovimientoHandler {
	return &MovimientoHandler{inventarioUC: inventarioUC, reportesUC: reportesUC}
}

// Registrar registra un movimiento de stock. POST /api/movimientos
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventario.MovimientoInput{
		ProductoID:    in.ProductoID,
		Tipo:          in.Tipo,
		Cantidad:      in.Cantidad,
		StockObjetivo: in.StockObjetivo,
		PesoTotal:     in.PesoTotal,
		FotoPesoURL:   in.FotoPesoURL,
		Observaciones: in.Observaciones,
		RegistradoPor: GetActor(c),
	}
	if in.FechaMovimiento != nil {
		input.FechaMovimiento = *in.FechaMovimiento
	}
	mov, err := h.inventarioUC.RegistrarMovimiento(c.UserContext(), input)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimientoResponse(mov))
}

// Historial lista los movimientos de un producto, más recientes primero.
// GET /api/productos/:id/historial?limite=50
func (h *MovimientoHandler) Historial(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	limite := c.QueryInt("limite", 0)
	movs, err := h.reportesUC.Historial(c.UserContext(), id, limite)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(toMovimientoResponses(movs))
}

// Pendientes lista las entradas sin factura. GET /api/movimientos/pendientes
func (h *MovimientoHandler) Pendientes(c *fiber.Ctx) error {
	movs, err := h.reportesUC.EntradasPendientes(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(toMovimientoResponses(movs))
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:               m.ID,
		ProductoID:       m.ProductoID,
		FacturaID:        m.FacturaID,
		Tipo:             m.Tipo,
		Cantidad:         m.Cantidad,
		CantidadAnterior: m.CantidadAnterior,
		CantidadNueva:    m.CantidadNueva,
		PesoTotal:        m.PesoTotal,
		FotoPesoURL:      m.FotoPesoURL,
		Observaciones:    m.Observaciones,
		RegistradoPor:    m.RegistradoPor,
		FechaMovimiento:  m.FechaMovimiento.UTC(),
		CreatedAt:        m.CreatedAt.UTC(),
	}
}

func toMovimientoResponses(movs []*entity.Movimiento) []dto.MovimientoResponse {
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimientoResponse(m))
	}
	return out
}
