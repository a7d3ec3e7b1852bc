package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branch-hr-api/internal/config"
)

func TestOpenAndMigrate_SQLiteMemory(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}

	db, err := Open(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(sqlDB, cfg.Driver))
	// повторный запуск ничего не меняет
	require.NoError(t, Migrate(sqlDB, cfg.Driver))

	for _, table := range []string{"departments", "employees", "vacations", "loans"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}

func TestMigrationTarget(t *testing.T) {
	dialect, dir, err := migrationTarget(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialect)
	assert.Equal(t, "postgres", dir)

	_, _, err = migrationTarget("oracle")
	assert.Error(t, err)
}
