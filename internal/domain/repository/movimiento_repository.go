package repository

import (
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia del libro de stock.
// El libro es append-only: no hay Update ni Delete de movimientos; la única
// mutación posterior permitida es VincularFactura, una sola vez por fila.
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	// ListByProducto devuelve el historial más reciente primero
	// (fecha_movimiento DESC). limite <= 0 significa sin límite.
	ListByProducto(productoID string, limite int) ([]*entity.Movimiento, error)
	// ListPendientes devuelve las entradas sin factura (factura_id IS NULL).
	ListPendientes() ([]*entity.Movimiento, error)
	ListByFactura(facturaID string) ([]*entity.Movimiento, error)
	// GetManyForUpdate carga y bloquea los movimientos indicados dentro de la
	// transacción actual (precondición de la validación de entradas).
	GetManyForUpdate(ids []string) ([]*entity.Movimiento, error)
	// VincularFactura fija factura_id en las filas indicadas.
	VincularFactura(ids []string, facturaID string) error
	// PesoNeto calcula sum(peso_total entradas) - sum(peso_total salidas)
	// sobre todo el historial del producto (se recalcula bajo demanda).
	PesoNeto(productoID string) (decimal.Decimal, error)
}
