// Package testutil holds shared test fixtures.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// OpenDB opens an in-memory sqlite database with the given models
// migrated. TranslateError matches the production connection, so
// uniqueness violations surface as gorm.ErrDuplicatedKey in tests too.
func OpenDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	// _foreign_keys=1 so ON DELETE CASCADE behaves like Postgres
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every statement on the same :memory: db
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models...))
	return db
}
