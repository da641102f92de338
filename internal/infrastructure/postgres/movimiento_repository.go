package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
// Append-only: este adaptador no expone UPDATE ni DELETE salvo VincularFactura.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoColumnas = `id, producto_id, factura_id, tipo, cantidad, cantidad_anterior,
	cantidad_nueva, peso_total, foto_peso_url, observaciones, registrado_por,
	fecha_movimiento, created_at`

// Create persiste un movimiento del libro de stock.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (` + movimientoColumnas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.FacturaID, m.Tipo, m.Cantidad, m.CantidadAnterior,
		m.CantidadNueva, m.PesoTotal, m.FotoPesoURL, m.Observaciones, m.RegistradoPor,
		m.FechaMovimiento, m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumnas + ` FROM movimientos WHERE id = $1`
	m, err := scanMovimiento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// ListByProducto lista el historial de un producto, más reciente primero.
// limite <= 0 significa sin límite.
func (r *MovimientoRepo) ListByProducto(productoID string, limite int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumnas + `
		FROM movimientos WHERE producto_id = $1
		ORDER BY fecha_movimiento DESC`
	args := []any{productoID}
	if limite > 0 {
		query += " LIMIT $2"
		args = append(args, limite)
	}
	return r.listar(query, args...)
}

// ListPendientes lista las entradas sin factura, más recientes primero.
func (r *MovimientoRepo) ListPendientes() ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumnas + `
		FROM movimientos WHERE tipo = $1 AND factura_id IS NULL
		ORDER BY fecha_movimiento DESC`
	return r.listar(query, entity.MovimientoEntrada)
}

// ListByFactura lista los movimientos vinculados a una factura.
func (r *MovimientoRepo) ListByFactura(facturaID string) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumnas + `
		FROM movimientos WHERE factura_id = $1
		ORDER BY fecha_movimiento DESC`
	return r.listar(query, facturaID)
}

// GetManyForUpdate carga y bloquea los movimientos indicados (SELECT FOR UPDATE)
// dentro de la transacción actual. Devuelve solo las filas encontradas: el
// caller compara contra len(ids).
func (r *MovimientoRepo) GetManyForUpdate(ids []string) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumnas + `
		FROM movimientos WHERE id = ANY($1) FOR UPDATE`
	return r.listar(query, ids)
}

// VincularFactura fija factura_id en las filas indicadas (la única mutación
// permitida sobre el libro, una sola vez por movimiento).
func (r *MovimientoRepo) VincularFactura(ids []string, facturaID string) error {
	query := `UPDATE movimientos SET factura_id = $1 WHERE id = ANY($2) AND factura_id IS NULL`
	tag, err := r.q.Exec(context.Background(), query, facturaID, ids)
	if err != nil {
		return fmt.Errorf("vincular factura: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return domain.ErrConflict
	}
	return nil
}

// PesoNeto calcula sum(peso_total entradas) - sum(peso_total salidas) sobre
// todo el historial del producto.
func (r *MovimientoRepo) PesoNeto(productoID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE tipo
			WHEN $2 THEN peso_total
			WHEN $3 THEN -peso_total
			ELSE 0 END), 0)
		FROM movimientos
		WHERE producto_id = $1 AND peso_total IS NOT NULL`
	var neto decimal.Decimal
	err := r.q.QueryRow(context.Background(), query,
		productoID, entity.MovimientoEntrada, entity.MovimientoSalida,
	).Scan(&neto)
	if err != nil {
		return decimal.Zero, fmt.Errorf("peso neto: %w", err)
	}
	return neto, nil
}

func (r *MovimientoRepo) listar(query string, args ...any) ([]*entity.Movimiento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// scanMovimiento escanea una fila; factura_id, peso_total, foto y observaciones pueden ser NULL.
func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var foto, observaciones *string
	err := row.Scan(
		&m.ID, &m.ProductoID, &m.FacturaID, &m.Tipo, &m.Cantidad, &m.CantidadAnterior,
		&m.CantidadNueva, &m.PesoTotal, &foto, &observaciones, &m.RegistradoPor,
		&m.FechaMovimiento, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan movimiento: %w", err)
	}
	if foto != nil {
		m.FotoPesoURL = *foto
	}
	if observaciones != nil {
		m.Observaciones = *observaciones
	}
	return &m, nil
}
