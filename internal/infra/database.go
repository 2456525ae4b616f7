package infra

import (
	"strings"

	"github.com/victorjanco1992/despensa-app/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection. Schema migration is separate (see
// Migrate) so the HTTP server can start listening while it runs.
//
// A postgres:// (or postgresql://) DSN selects the pgx-backed driver; any
// other value is treated as a SQLite file path, which is how the
// single-machine shop deployment runs. uuid values come from the
// application, so gen_random_uuid() is never relied on.
func NewDatabase(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		// Enable FK enforcement; SQLite has it off by default.
		dialector = sqlite.Open(dsn + "?_foreign_keys=on")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
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
	return db, nil
}

// Migrate creates / updates all tables. Also used by the sqlite-backed
// repository tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Producto{},
		&model.Cliente{},
		&model.CuentaCorrienteItem{},
		&model.Transferencia{},
		&model.ListaComprasItem{},
	)
}
