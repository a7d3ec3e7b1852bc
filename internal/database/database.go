package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/branch-hr-api/internal/config"
	"github.com/branch-hr-api/internal/migrations"
)

const connectAttempts = 30

// Open подключается к БД выбранного драйвера. PostgreSQL может стартовать
// позже приложения, поэтому подключение к нему повторяется.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		// SQLite допускает одного писателя; для :memory: каждое новое
		// соединение было бы отдельной пустой базой
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	case config.DriverPostgres:
		var db *gorm.DB
		var err error

		for range connectAttempts {
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
			if err == nil {
				sqlDB, _ := db.DB()
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
			}
			time.Sleep(time.Second)
		}

		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate применяет миграции goose для драйвера
func Migrate(db *sql.DB, driver string) error {
	dialect, dir, err := migrationTarget(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func migrationTarget(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite3", "sqlite", nil
	case config.DriverPostgres:
		return "postgres", "postgres", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
