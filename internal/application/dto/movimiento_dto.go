package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimientoRequest body para POST /api/movimientos.
// Cantidad aplica a entrada/salida; StockObjetivo solo a ajuste.
type RegistrarMovimientoRequest struct {
	ProductoID      string           `json:"producto_id" validate:"required"`
	Tipo            string           `json:"tipo" validate:"required"`
	Cantidad        decimal.Decimal  `json:"cantidad"`
	StockObjetivo   *decimal.Decimal `json:"stock_objetivo,omitempty"`
	PesoTotal       *decimal.Decimal `json:"peso_total,omitempty"`
	FotoPesoURL     string           `json:"foto_peso_url,omitempty"`
	Observaciones   string           `json:"observaciones,omitempty"`
	FechaMovimiento *time.Time       `json:"fecha_movimiento,omitempty"`
}

// MovimientoResponse salida de un movimiento del libro de stock.
type MovimientoResponse struct {
	ID               string           `json:"id"`
	ProductoID       string           `json:"producto_id"`
	FacturaID        *string          `json:"factura_id"`
	Tipo             string           `json:"tipo"`
	Cantidad         decimal.Decimal  `json:"cantidad"`
	CantidadAnterior decimal.Decimal  `json:"cantidad_anterior"`
	CantidadNueva    decimal.Decimal  `json:"cantidad_nueva"`
	PesoTotal        *decimal.Decimal `json:"peso_total,omitempty"`
	FotoPesoURL      string           `json:"foto_peso_url,omitempty"`
	Observaciones    string           `json:"observaciones,omitempty"`
	RegistradoPor    string           `json:"registrado_por"`
	FechaMovimiento  time.Time        `json:"fecha_movimiento"`
	CreatedAt        time.Time        `json:"created_at"`
}
