package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidarEntradasRequest body para POST /api/validaciones.
// ReferenciaFactura vacía genera un número de respaldo V-REF-<HHMMSS>.
type ValidarEntradasRequest struct {
	MovimientoIDs     []string `json:"movimiento_ids" validate:"required,min=1"`
	ReferenciaFactura string   `json:"referencia_factura"`
}

// FacturaResponse salida de una factura.
type FacturaResponse struct {
	ID              string          `json:"id"`
	NumeroFactura   string          `json:"numero_factura"`
	Proveedor       string          `json:"proveedor"`
	FechaFactura    time.Time       `json:"fecha_factura"`
	FechaRecepcion  time.Time       `json:"fecha_recepcion"`
	TotalBruto      decimal.Decimal `json:"total_bruto"`
	TotalImpuestos  decimal.Decimal `json:"total_impuestos"`
	TotalNeto       decimal.Decimal `json:"total_neto"`
	Estado          string          `json:"estado"`
	Observaciones   string          `json:"observaciones,omitempty"`
	ValidadaPor     string          `json:"validada_por,omitempty"`
	FechaValidacion *time.Time      `json:"fecha_validacion,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
