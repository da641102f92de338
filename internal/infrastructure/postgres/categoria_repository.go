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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

const categoriaColumnas = `id, nombre, descripcion, color, imagen, activo, created_at, updated_at`

// Create persiste una categoría nueva.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (` + categoriaColumnas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Descripcion, c.Color, c.Imagen, c.Activo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID (también inactivas, para consultas históricas).
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaColumnas + ` FROM categorias WHERE id = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, id))
}

// GetByNombre obtiene una categoría por nombre exacto.
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaColumnas + ` FROM categorias WHERE nombre = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, nombre))
}

// Update actualiza los campos editables de la categoría.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias
		SET nombre = $2, descripcion = $3, color = $4, imagen = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Descripcion, c.Color, c.Imagen, c.Activo, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las categorías ordenadas por nombre; por defecto solo activas.
func (r *CategoriaRepo) List(incluirInactivas bool) ([]*entity.Categoria, error) {
	query := `SELECT ` + categoriaColumnas + ` FROM categorias WHERE 1=1` +
		soloActivos("", incluirInactivas) + ` ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Color, &c.Imagen,
			&c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Desactivar aplica la baja lógica (activo=false).
func (r *CategoriaRepo) Desactivar(id string) error {
	query := `UPDATE categorias SET activo = FALSE, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("desactivar categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoriaRepo) scanUna(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Color, &c.Imagen,
		&c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}
