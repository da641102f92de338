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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumnas = `id, nombre, password_hash, rol, activo, created_at`

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `INSERT INTO usuarios (` + usuarioColumnas + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.PasswordHash, u.Rol, u.Activo, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumnas + ` FROM usuarios WHERE id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id))
}

// GetByNombre obtiene un usuario por nombre (único).
func (r *UsuarioRepo) GetByNombre(nombre string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumnas + ` FROM usuarios WHERE nombre = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, nombre))
}

func (r *UsuarioRepo) scanUno(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.PasswordHash, &u.Rol, &u.Activo, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
