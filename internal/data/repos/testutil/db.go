package testutil

import (
	"fmt"
	"net/url"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/obradorlabs/obrador-backend/internal/data/db"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg = logger.NewNop()
	})
	return logg
}

// DB opens a fresh in-memory SQLite database with the full schema migrated.
// Each call returns an isolated database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	// A named shared in-memory database keeps the schema visible across the
	// connections gorm pools, while staying isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(tb.Name()))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return gdb
}

// Tx starts a transaction that is rolled back when the test finishes.
func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
