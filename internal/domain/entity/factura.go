package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proveedor.
const (
	FacturaPendiente = "Pendiente"
	FacturaValidada  = "Validada"
	FacturaAnulada   = "Anulada"
)

// Factura es el ancla de conciliación de las entradas: agrupa movimientos de
// tipo entrada para dejar trazado de dónde vino cada aumento de stock.
// Puede venir de un proceso externo de recepción o ser sintetizada por la
// validación cuando las entradas no traen referencia formal.
type Factura struct {
	ID              string
	NumeroFactura   string
	Proveedor       string
	FechaFactura    time.Time
	FechaRecepcion  time.Time
	TotalBruto      decimal.Decimal
	TotalImpuestos  decimal.Decimal
	TotalNeto       decimal.Decimal
	Estado          string
	Observaciones   string
	ValidadaPor     string
	FechaValidacion *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
