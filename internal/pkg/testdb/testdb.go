// Package testdb opens throwaway databases with the order schema applied,
// for tests that exercise GORM code without a PostgreSQL server.
package testdb

import (
	"fmt"
	"testing"

	"github.com/kashish2310/food-delivery-order-system/internal/adapters/out/postgres/orderrepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a private in-memory SQLite database with the orders
// table migrated. The database lives until the test finishes.
func OpenSQLite(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(tb, err)

	sqlDB, err := db.DB()
	require.NoError(tb, err)
	// A shared-cache memory database allows one writer; queue everything
	// through a single connection instead of failing with SQLITE_LOCKED.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(tb, db.AutoMigrate(&orderrepo.OrderDTO{}))

	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
