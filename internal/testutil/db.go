// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"testing"

	"anoa.com/spacemanagement/internal/bootstrap"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// open returns a private in-memory sqlite database. A single connection
// keeps every statement on the same memory database.
func open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// CatalogDB is a migrated catalog database with the default images seeded.
func CatalogDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := open(t)
	require.NoError(t, bootstrap.MigrateCatalog(db))
	require.NoError(t, bootstrap.SeedImages(db))
	return db
}

// AuthDB is a migrated, empty auth database.
func AuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := open(t)
	require.NoError(t, bootstrap.MigrateAuth(db))
	return db
}
