package infra

import (
	"fmt"
	"strings"

	"github.com/Jaimelll/procesos/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection and runs AutoMigrate to create or
// update all tables. Postgres is the production backend; any DSN that is not a
// postgres URL is treated as a SQLite path, which keeps local development and
// CI runs free of external services.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(openDialector(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// RunMigrations applies the schema. It is idempotent, so integration tests can
// call it against a throwaway database on every run.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Parametro{},
		&model.Formula{},
		&model.Proceso{},
		&model.Evento{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Only Postgres supports these statements; on SQLite the composite index from
// the model tags is enough.
func applySchemaPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	patches := []string{
		// Events are always read in chronological order per process.
		`CREATE INDEX IF NOT EXISTS idx_eventos_proceso_fecha
		     ON eventos (proceso_id, fecha, id)`,
		// The dashboard groups by direccion constantly.
		`CREATE INDEX IF NOT EXISTS idx_procesos_direccion
		     ON procesos (direccion)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
