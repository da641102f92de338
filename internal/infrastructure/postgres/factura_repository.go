package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación del puerto FacturaRepository sobre PostgreSQL (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumnas = `id, numero_factura, proveedor, fecha_factura, fecha_recepcion,
	total_bruto, total_impuestos, total_neto, estado, observaciones,
	validada_por, fecha_validacion, created_at, updated_at`

// Create persiste una factura.
func (r *FacturaRepo) Create(f *entity.Factura) error {
	query := `
		INSERT INTO facturas (` + facturaColumnas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.NumeroFactura, f.Proveedor, f.FechaFactura, f.FechaRecepcion,
		f.TotalBruto, f.TotalImpuestos, f.TotalNeto, f.Estado, f.Observaciones,
		f.ValidadaPor, f.FechaValidacion, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumnas + ` FROM facturas WHERE id = $1`
	f, err := scanFactura(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}

// List devuelve facturas, más recientes primero. estado vacío = todas.
func (r *FacturaRepo) List(estado string) ([]*entity.Factura, error) {
	query := `SELECT ` + facturaColumnas + ` FROM facturas`
	args := []any{}
	if estado != "" {
		query += " WHERE estado = $1"
		args = append(args, estado)
	}
	query += " ORDER BY fecha_recepcion DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// scanFactura escanea una fila; observaciones, validada_por y fecha_validacion pueden ser NULL.
func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var observaciones, validadaPor *string
	err := row.Scan(
		&f.ID, &f.NumeroFactura, &f.Proveedor, &f.FechaFactura, &f.FechaRecepcion,
		&f.TotalBruto, &f.TotalImpuestos, &f.TotalNeto, &f.Estado, &observaciones,
		&validadaPor, &f.FechaValidacion, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan factura: %w", err)
	}
	if observaciones != nil {
		f.Observaciones = *observaciones
	}
	if validadaPor != nil {
		f.ValidadaPor = *validadaPor
	}
	return &f, nil
}
