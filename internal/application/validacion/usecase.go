package validacion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

// proveedorPorDefecto se usa en facturas sintetizadas por la validación,
// cuando las entradas no traen un proveedor formal.
const proveedorPorDefecto = "Varios"

// UseCase agrupa entradas pendientes bajo una factura, dejando trazada la
// procedencia de cada aumento de stock. La vinculación es at-most-once por
// movimiento: una fila con factura_id ya fijado no puede volver a seleccionarse.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// ValidarEntradas vincula los movimientos indicados a una factura nueva con
// estado Validada. Si referencia está vacía se sintetiza un número de respaldo
// V-REF-<HHMMSS> para que todo lote validado quede trazable a alguna factura.
// Atómico: o todos los movimientos quedan vinculados y la factura creada, o nada.
func (uc *UseCase) ValidarEntradas(ctx context.Context, movimientoIDs []string, referencia, actor string) (*entity.Factura, error) {
	ids := dedupe(movimientoIDs)
	if len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if actor == "" {
		actor = entity.UsuarioSistema
	}
	now := time.Now()
	numero := referencia
	if numero == "" {
		numero = fmt.Sprintf("V-REF-%s", now.Format("150405"))
	}

	factura := &entity.Factura{
		ID:              uuid.New().String(),
		NumeroFactura:   numero,
		Proveedor:       proveedorPorDefecto,
		FechaFactura:    now,
		FechaRecepcion:  now,
		TotalBruto:      decimal.Zero,
		TotalImpuestos:  decimal.Zero,
		TotalNeto:       decimal.Zero,
		Estado:          entity.FacturaValidada,
		ValidadaPor:     actor,
		FechaValidacion: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.RunValidacion(ctx, func(
		movRepo repository.MovimientoRepository,
		facturaRepo repository.FacturaRepository,
	) error {
		movs, err := movRepo.GetManyForUpdate(ids)
		if err != nil {
			return err
		}
		if len(movs) != len(ids) {
			return domain.ErrNotFound
		}
		for _, m := range movs {
			// Solo entradas sin factura son validables.
			if !m.Pendiente() {
				return domain.ErrConflict
			}
		}
		if err := facturaRepo.Create(factura); err != nil {
			return err
		}
		return movRepo.VincularFactura(ids, factura.ID)
	})
	if err != nil {
		return nil, err
	}
	return factura, nil
}

func dedupe(ids []string) []string {
	vistos := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := vistos[id]; ok {
			continue
		}
		vistos[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
