package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lycoris/control-stock/pkg/logger"
)

//go:embed migrations/*.sql
var migracionesFS embed.FS

// RunMigrations aplica las migraciones pendientes del esquema. Usa goose sobre
// un *sql.DB efímero (driver pgx/stdlib); el pool pgx de la app no participa.
func RunMigrations(dsn string, log *logger.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migracionesFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	log.Info().Msg("Aplicando migraciones pendientes")
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	log.Info().Msg("Migraciones al día")
	return nil
}
