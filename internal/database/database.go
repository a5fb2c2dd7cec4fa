package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/config"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the connection pool for the configured driver. The returned
// handle is safe for concurrent use and is owned by the caller.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Info
	if cfg.GinMode == "release" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.DBDriver == config.DriverSQLite {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	slog.Info("database connection established", slog.String("driver", cfg.DBDriver))
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Migrate creates the projects, tasks and files tables when absent.
// Projects must exist before the tables that reference them.
func Migrate(db *gorm.DB) error {
	slog.Info("running schema initialization")
	err := db.AutoMigrate(
		&models.Project{},
		&models.Task{},
		&models.FileAttachment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db); err != nil {
		return err
	}
	slog.Info("schema initialization completed")
	return nil
}
