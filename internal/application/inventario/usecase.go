package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

// UseCase registra movimientos de stock de forma transaccional: bloqueo de la
// fila del producto (SELECT FOR UPDATE), snapshot anterior/nuevo, inserción del
// movimiento y actualización de StockActual con Commit/Rollback todo-o-nada.
// Es la única autoridad de mutación sobre Producto.StockActual.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// MovimientoInput entrada para registrar un movimiento.
// Cantidad (> 0) aplica a entrada/salida; para ajuste se ignora y el stock se
// fija en StockObjetivo, registrando |nueva - anterior| como cantidad de auditoría.
type MovimientoInput struct {
	ProductoID      string
	Tipo            string
	Cantidad        decimal.Decimal
	StockObjetivo   *decimal.Decimal
	PesoTotal       *decimal.Decimal
	FotoPesoURL     string
	Observaciones   string
	RegistradoPor   string
	FechaMovimiento time.Time // cero = ahora
}

// RegistrarMovimiento valida la entrada, abre la transacción y aplica el
// movimiento. Ante cualquier error la transacción completa se revierte: nunca
// queda un movimiento sin su actualización de stock ni viceversa.
func (uc *UseCase) RegistrarMovimiento(ctx context.Context, input MovimientoInput) (*entity.Movimiento, error) {
	switch input.Tipo {
	case entity.MovimientoEntrada, entity.MovimientoSalida:
		if input.ProductoID == "" || !input.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovimientoAjuste:
		if input.ProductoID == "" || input.StockObjetivo == nil || input.StockObjetivo.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	fecha := input.FechaMovimiento
	if fecha.IsZero() {
		fecha = now
	}
	actor := input.RegistradoPor
	if actor == "" {
		actor = entity.UsuarioSistema
	}

	var mov *entity.Movimiento
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		// Bloquea la fila del producto para el read-modify-write del stock.
		prod, err := productoRepo.GetForUpdate(input.ProductoID)
		if err != nil {
			return err
		}
		if prod == nil || !prod.Activo {
			return domain.ErrNotFound
		}
		if err := validarPeso(prod, input); err != nil {
			return err
		}
		// Los productos no pesables se mueven en unidades enteras.
		if !prod.EsPesable && input.Tipo != entity.MovimientoAjuste && !input.Cantidad.IsInteger() {
			return domain.ErrInvalidInput
		}

		anterior := prod.StockActual
		cantidad := input.Cantidad
		var nueva decimal.Decimal
		switch input.Tipo {
		case entity.MovimientoEntrada:
			nueva = anterior.Add(cantidad)
		case entity.MovimientoSalida:
			if anterior.LessThan(cantidad) {
				return domain.ErrInsufficientStock
			}
			nueva = anterior.Sub(cantidad)
		case entity.MovimientoAjuste:
			nueva = *input.StockObjetivo
			cantidad = nueva.Sub(anterior).Abs()
		}

		mov = &entity.Movimiento{
			ID:               uuid.New().String(),
			ProductoID:       prod.ID,
			Tipo:             input.Tipo,
			Cantidad:         cantidad,
			CantidadAnterior: anterior,
			CantidadNueva:    nueva,
			PesoTotal:        input.PesoTotal,
			FotoPesoURL:      input.FotoPesoURL,
			Observaciones:    input.Observaciones,
			RegistradoPor:    actor,
			FechaMovimiento:  fecha,
			CreatedAt:        now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productoRepo.UpdateStock(prod.ID, nueva)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// validarPeso aplica las reglas de peso: los productos pesables exigen un peso
// positivo en entrada/salida; en cualquier otro caso el peso se rechaza.
func validarPeso(prod *entity.Producto, input MovimientoInput) error {
	esEntradaOSalida := input.Tipo == entity.MovimientoEntrada || input.Tipo == entity.MovimientoSalida
	if prod.EsPesable && esEntradaOSalida {
		if input.PesoTotal == nil || !input.PesoTotal.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if input.PesoTotal != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
