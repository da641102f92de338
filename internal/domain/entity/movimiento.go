package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "entrada" // recepción de mercancía
	MovimientoSalida  = "salida"  // consumo o despacho
	MovimientoAjuste  = "ajuste"  // fija el stock en un valor objetivo
)

// UsuarioSistema es el actor centinela cuando no hay sesión autenticada.
const UsuarioSistema = "sistema"

// Movimiento es un registro inmutable del libro de stock: se crea exactamente
// una vez por cambio de stock, en la misma transacción que actualiza
// Producto.StockActual, y nunca se edita ni se borra. La única mutación
// permitida posterior es fijar FacturaID una sola vez durante la validación.
type Movimiento struct {
	ID               string
	ProductoID       string
	FacturaID        *string // nil = entrada pendiente de validar
	Tipo             string
	Cantidad         decimal.Decimal // magnitud del delta; para ajuste, |nueva - anterior|
	CantidadAnterior decimal.Decimal // snapshot de stock antes del movimiento
	CantidadNueva    decimal.Decimal // snapshot de stock después del movimiento
	PesoTotal        *decimal.Decimal // peso en kg (solo productos pesables)
	FotoPesoURL      string
	Observaciones    string
	RegistradoPor    string
	FechaMovimiento  time.Time
	CreatedAt        time.Time
}

// Pendiente indica si el movimiento es una entrada aún sin vincular a factura.
func (m *Movimiento) Pendiente() bool {
	return m.Tipo == MovimientoEntrada && m.FacturaID == nil
}
