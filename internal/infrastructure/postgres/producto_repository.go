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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumnas = `id, nombre, codigo, descripcion, categoria_id, unidad_medida,
	es_pesable, requiere_foto_peso, peso_unitario, stock_actual, stock_minimo,
	activo, created_at, updated_at`

// Create persiste un producto nuevo. StockActual inicia en 0.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumnas + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Codigo, p.Descripcion, p.CategoriaID, p.UnidadMedida,
		p.EsPesable, p.RequiereFotoPeso, p.PesoUnitario, p.StockActual, p.StockMinimo,
		p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (también inactivos, para consultas históricas).
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM productos WHERE id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id))
}

// GetByCodigo obtiene un producto por código.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM productos WHERE codigo = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, codigo))
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE) para
// el read-modify-write de stock dentro de la transacción actual.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza los campos editables del producto. No toca stock_actual.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, codigo = NULLIF($3, ''), descripcion = $4, categoria_id = $5,
			unidad_medida = $6, es_pesable = $7, requiere_foto_peso = $8,
			peso_unitario = $9, stock_minimo = $10, activo = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Codigo, p.Descripcion, p.CategoriaID,
		p.UnidadMedida, p.EsPesable, p.RequiereFotoPeso,
		p.PesoUnitario, p.StockMinimo, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija stock_actual. Solo el motor de inventario debe invocarlo,
// dentro de la misma transacción que inserta el movimiento.
func (r *ProductoRepo) UpdateStock(id string, stock decimal.Decimal) error {
	query := `UPDATE productos SET stock_actual = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve productos filtrados por categoría y texto (nombre o código),
// ordenados por nombre; por defecto solo activos.
func (r *ProductoRepo) List(filtro repository.FiltroProductos) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM productos WHERE 1=1` +
		soloActivos("", filtro.IncluirInactivos)
	args := []any{}
	pos := 1
	if filtro.CategoriaID != "" {
		query += fmt.Sprintf(" AND categoria_id = $%d", pos)
		args = append(args, filtro.CategoriaID)
		pos++
	}
	if filtro.Texto != "" {
		query += fmt.Sprintf(" AND (nombre ILIKE $%d OR codigo ILIKE $%d)", pos, pos)
		args = append(args, "%"+filtro.Texto+"%")
		pos++
	}
	query += " ORDER BY nombre"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Desactivar aplica la baja lógica (activo=false).
func (r *ProductoRepo) Desactivar(id string) error {
	query := `UPDATE productos SET activo = FALSE, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListCodigosActivos devuelve los códigos no nulos de los productos activos.
func (r *ProductoRepo) ListCodigosActivos() ([]string, error) {
	query := `SELECT codigo FROM productos WHERE codigo IS NOT NULL AND activo = TRUE`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list codigos: %w", err)
	}
	defer rows.Close()
	var codigos []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan codigo: %w", err)
		}
		codigos = append(codigos, c)
	}
	return codigos, rows.Err()
}

func (r *ProductoRepo) scanUno(row pgx.Row) (*entity.Producto, error) {
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// scanProducto escanea una fila de productos; codigo y descripcion pueden ser NULL.
func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var codigo, descripcion *string
	err := row.Scan(
		&p.ID, &p.Nombre, &codigo, &descripcion, &p.CategoriaID, &p.UnidadMedida,
		&p.EsPesable, &p.RequiereFotoPeso, &p.PesoUnitario, &p.StockActual, &p.StockMinimo,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	if codigo != nil {
		p.Codigo = *codigo
	}
	if descripcion != nil {
		p.Descripcion = *descripcion
	}
	return &p, nil
}
