package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// soloActivos devuelve el predicado de filas activas para componer en listados.
// Centralizarlo evita el patrón de olvidar el filtro en algún call site.
func soloActivos(alias string, incluirInactivos bool) string {
	if incluirInactivos {
		return ""
	}
	if alias != "" {
		return " AND " + alias + ".activo = TRUE"
	}
	return " AND activo = TRUE"
}
