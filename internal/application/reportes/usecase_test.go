package reportes_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lycoris/control-stock/internal/application/reportes"
	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

// Fakes de solo lectura: el lado de reportes nunca muta, así que basta un
// estado fijo sin semántica transaccional.

type stubProductoRepo struct {
	productos []*entity.Producto
}

func (s *stubProductoRepo) Create(*entity.Producto) error { return nil }

func (s *stubProductoRepo) GetByID(id string) (*entity.Producto, error) {
	for _, p := range s.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubProductoRepo) GetByCodigo(string) (*entity.Producto, error)      { return nil, nil }
func (s *stubProductoRepo) GetForUpdate(id string) (*entity.Producto, error)  { return s.GetByID(id) }
func (s *stubProductoRepo) Update(*entity.Producto) error                     { return nil }
func (s *stubProductoRepo) UpdateStock(string, decimal.Decimal) error         { return nil }
func (s *stubProductoRepo) Desactivar(string) error                           { return nil }
func (s *stubProductoRepo) ListCodigosActivos() ([]string, error)             { return nil, nil }

func (s *stubProductoRepo) List(filtro repository.FiltroProductos) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range s.productos {
		if !filtro.IncluirInactivos && !p.Activo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type stubMovimientoRepo struct {
	movimientos []*entity.Movimiento
	pesoNeto    decimal.Decimal
}

func (s *stubMovimientoRepo) Create(*entity.Movimiento) error                  { return nil }
func (s *stubMovimientoRepo) GetByID(string) (*entity.Movimiento, error)       { return nil, nil }
func (s *stubMovimientoRepo) GetManyForUpdate([]string) ([]*entity.Movimiento, error) {
	return nil, nil
}
func (s *stubMovimientoRepo) VincularFactura([]string, string) error { return nil }

func (s *stubMovimientoRepo) ListByProducto(productoID string, limite int) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range s.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	if limite > 0 && len(out) > limite {
		out = out[:limite]
	}
	return out, nil
}

func (s *stubMovimientoRepo) ListPendientes() ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range s.movimientos {
		if m.Pendiente() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMovimientoRepo) ListByFactura(facturaID string) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range s.movimientos {
		if m.FacturaID != nil && *m.FacturaID == facturaID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMovimientoRepo) PesoNeto(string) (decimal.Decimal, error) { return s.pesoNeto, nil }

type stubFacturaRepo struct {
	facturas []*entity.Factura
}

func (s *stubFacturaRepo) Create(*entity.Factura) error { return nil }

func (s *stubFacturaRepo) GetByID(id string) (*entity.Factura, error) {
	for _, f := range s.facturas {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (s *stubFacturaRepo) List(estado string) ([]*entity.Factura, error) {
	var out []*entity.Factura
	for _, f := range s.facturas {
		if estado != "" && f.Estado != estado {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func prodActivo(stockActual, stockMinimo string) *entity.Producto {
	return &entity.Producto{
		ID:          uuid.New().String(),
		StockActual: dec(stockActual),
		StockMinimo: dec(stockMinimo),
		Activo:      true,
	}
}

func TestResumen_SoloProductosActivos(t *testing.T) {
	inactivo := prodActivo("0", "5")
	inactivo.Activo = false

	uc := reportes.NewUseCase(
		&stubProductoRepo{productos: []*entity.Producto{
			prodActivo("10", "5"),
			prodActivo("5", "5"),
			prodActivo("0", "5"),
			inactivo,
		}},
		&stubMovimientoRepo{},
		&stubFacturaRepo{},
	)

	r, err := uc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total, "los inactivos no cuentan en el tablero")
	assert.Equal(t, 1, r.BajoStock)
	assert.Equal(t, 1, r.SinStock)
}

func TestPesoNeto_SoloPesables(t *testing.T) {
	pesable := prodActivo("10", "0")
	pesable.EsPesable = true
	unitario := prodActivo("10", "0")

	uc := reportes.NewUseCase(
		&stubProductoRepo{productos: []*entity.Producto{pesable, unitario}},
		&stubMovimientoRepo{pesoNeto: dec("12.75")},
		&stubFacturaRepo{},
	)
	ctx := context.Background()

	neto, err := uc.PesoNeto(ctx, pesable.ID)
	require.NoError(t, err)
	assert.True(t, neto.Equal(dec("12.75")))

	_, err = uc.PesoNeto(ctx, unitario.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto no pesable no tiene peso neto")

	_, err = uc.PesoNeto(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistorial_ProductoInexistente(t *testing.T) {
	uc := reportes.NewUseCase(&stubProductoRepo{}, &stubMovimientoRepo{}, &stubFacturaRepo{})
	_, err := uc.Historial(context.Background(), uuid.New().String(), 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListarFacturas_EstadoInvalido(t *testing.T) {
	uc := reportes.NewUseCase(&stubProductoRepo{}, &stubMovimientoRepo{}, &stubFacturaRepo{
		facturas: []*entity.Factura{
			{ID: "f1", Estado: entity.FacturaValidada},
			{ID: "f2", Estado: entity.FacturaPendiente},
		},
	})
	ctx := context.Background()

	todas, err := uc.ListarFacturas(ctx, "")
	require.NoError(t, err)
	assert.Len(t, todas, 2)

	validadas, err := uc.ListarFacturas(ctx, entity.FacturaValidada)
	require.NoError(t, err)
	assert.Len(t, validadas, 1)

	_, err = uc.ListarFacturas(ctx, "Archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimientosDeFactura_FacturaInexistente(t *testing.T) {
	uc := reportes.NewUseCase(&stubProductoRepo{}, &stubMovimientoRepo{}, &stubFacturaRepo{})
	_, err := uc.MovimientosDeFactura(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
