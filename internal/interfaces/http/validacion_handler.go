package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/application/reportes"
	"github.com/lycoris/control-stock/internal/application/validacion"
	"github.com/lycoris/control-stock/internal/domain/entity"
)

// ValidacionHandler maneja la conciliación de entradas contra facturas.
type ValidacionHandler struct {
	validacionUC *validacion.UseCase
	reportesUC   *reportes.UseCase
}

// NewValidacionHandler construye el handler.
func NewValidacionHandler(validacionUC *validacion.UseCase, reportesUC *reportes.UseCase) *ValidacionHandler {
	return &ValidacionHandler{validacionUC: validacionUC, reportesUC: reportesUC}
}

// Validar vincula entradas pendientes a una factura nueva. POST /api/validaciones
func (h *ValidacionHandler) Validar(c *fiber.Ctx) error {
	var in dto.ValidarEntradasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.validacionUC.ValidarEntradas(c.UserContext(), in.MovimientoIDs, in.ReferenciaFactura, GetActor(c))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toFacturaResponse(factura))
}

// ListarFacturas lista facturas, opcionalmente por estado. GET /api/facturas?estado=Validada
func (h *ValidacionHandler) ListarFacturas(c *fiber.Ctx) error {
	facturas, err := h.reportesUC.ListarFacturas(c.UserContext(), c.Query("estado"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, toFacturaResponse(f))
	}
	return c.JSON(out)
}

// MovimientosDeFactura lista los movimientos vinculados a una factura.
// GET /api/facturas/:id/movimientos
func (h *ValidacionHandler) MovimientosDeFactura(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movs, err := h.reportesUC.MovimientosDeFactura(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(toMovimientoResponses(movs))
}

func toFacturaResponse(f *entity.Factura) dto.FacturaResponse {
	return dto.FacturaResponse{
		ID:              f.ID,
		NumeroFactura:   f.NumeroFactura,
		Proveedor:       f.Proveedor,
		FechaFactura:    f.FechaFactura.UTC(),
		FechaRecepcion:  f.FechaRecepcion.UTC(),
		TotalBruto:      f.TotalBruto,
		TotalImpuestos:  f.TotalImpuestos,
		TotalNeto:       f.TotalNeto,
		Estado:          f.Estado,
		Observaciones:   f.Observaciones,
		ValidadaPor:     f.ValidadaPor,
		FechaValidacion: f.FechaValidacion,
		CreatedAt:       f.CreatedAt.UTC(),
	}
}
