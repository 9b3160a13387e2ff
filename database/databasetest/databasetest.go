// Package databasetest opens throwaway migrated stores for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/config"
	"github.com/Deepika-251004/shampoo-website/database"
)

// New returns a migrated sqlite store in t's temp dir. It is closed when the
// test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Database{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Closed returns a store whose connection pool is already shut, so every
// query fails.
func Closed(t testing.TB) *gorm.DB {
	t.Helper()
	db := New(t)
	require.NoError(t, database.Close(db))
	return db
}
