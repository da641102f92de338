package validacion

import (
	"context"

	"github.com/lycoris/control-stock/internal/domain/repository"
)

// TxRunner abre una transacción con los repositorios que necesita la
// conciliación de entradas (movimientos + facturas).
type TxRunner interface {
	RunValidacion(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		facturaRepo repository.FacturaRepository,
	) error) error
}
