package postgres

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"todoapp/domain/repositories"
)

var testDBCounter atomic.Int64

// openTestDB opens a fresh in-memory sqlite database. Shared cache keeps
// the database alive across the pool's connections, which the goose
// provider and an open explicit transaction use at the same time.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:postgres_test_%d?mode=memory&cache=shared&_fk=1&_busy_timeout=5000",
		testDBCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func appTestMigrations() MigrationSource {
	return MigrationSource{FS: os.DirFS("testdata/migrations"), Dir: "app", Dialect: goose.DialectSQLite3}
}

func identityTestMigrations() MigrationSource {
	return MigrationSource{FS: os.DirFS("testdata/migrations"), Dir: "identity", Dialect: goose.DialectSQLite3}
}

func newTestDataUow(t *testing.T) repositories.DataUnitOfWork {
	t.Helper()

	db := openTestDB(t)
	uow := NewDataUnitOfWork(db, appTestMigrations())
	require.NoError(t, uow.Migrate(context.Background()))
	t.Cleanup(func() { _ = uow.Close() })
	return uow
}

func newTestIdentityUow(t *testing.T) repositories.IdentityUnitOfWork {
	t.Helper()

	db := openTestDB(t)
	uow := NewIdentityUnitOfWork(db, identityTestMigrations())
	require.NoError(t, uow.Migrate(context.Background()))
	t.Cleanup(func() { _ = uow.Close() })
	return uow
}
