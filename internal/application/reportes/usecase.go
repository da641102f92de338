package reportes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
	"github.com/lycoris/control-stock/internal/domain/stock"
)

// UseCase lado de lectura del libro de stock: resúmenes, peso neto e
// historiales. Nunca muta productos ni movimientos.
type UseCase struct {
	productoRepo repository.ProductoRepository
	movRepo      repository.MovimientoRepository
	facturaRepo  repository.FacturaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
	facturaRepo repository.FacturaRepository,
) *UseCase {
	return &UseCase{productoRepo: productoRepo, movRepo: movRepo, facturaRepo: facturaRepo}
}

// Resumen calcula los contadores de stock sobre el catálogo activo.
func (uc *UseCase) Resumen(ctx context.Context) (stock.Resumen, error) {
	productos, err := uc.productoRepo.List(repository.FiltroProductos{})
	if err != nil {
		return stock.Resumen{}, err
	}
	return stock.Resumir(productos), nil
}

// PesoNeto devuelve el peso acumulado (entradas - salidas) de un producto
// pesable. Se recalcula sobre todo el historial: no se persiste ningún total.
func (uc *UseCase) PesoNeto(ctx context.Context, productoID string) (decimal.Decimal, error) {
	prod, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return decimal.Zero, err
	}
	if prod == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	if !prod.EsPesable {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return uc.movRepo.PesoNeto(productoID)
}

// Historial devuelve los movimientos de un producto, más recientes primero.
// Cada llamada reconsulta: no se retiene cursor. Funciona también para
// productos inactivos (consulta histórica).
func (uc *UseCase) Historial(ctx context.Context, productoID string, limite int) ([]*entity.Movimiento, error) {
	prod, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByProducto(productoID, limite)
}

// EntradasPendientes devuelve la cola de conciliación: entradas sin factura.
func (uc *UseCase) EntradasPendientes(ctx context.Context) ([]*entity.Movimiento, error) {
	return uc.movRepo.ListPendientes()
}

// ListarFacturas devuelve el historial de facturas; estado vacío = todas.
func (uc *UseCase) ListarFacturas(ctx context.Context, estado string) ([]*entity.Factura, error) {
	switch estado {
	case "", entity.FacturaPendiente, entity.FacturaValidada, entity.FacturaAnulada:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.facturaRepo.List(estado)
}

// MovimientosDeFactura devuelve las entradas vinculadas a una factura.
func (uc *UseCase) MovimientosDeFactura(ctx context.Context, facturaID string) ([]*entity.Movimiento, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByFactura(facturaID)
}
