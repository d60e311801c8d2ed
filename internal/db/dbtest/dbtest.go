// Package dbtest opens throwaway SQLite databases with the service schema.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marcelly-ramos/projeto-backend/internal/db"
	"github.com/marcelly-ramos/projeto-backend/internal/models"
)

// New returns a private in-memory database. It holds a single connection,
// so code under test must not reach for the outer handle while a
// transaction is open.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := db.Config()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), cfg)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.SetupJoinTables(gdb))
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}
