package serviceimpl

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
	"todoapp/infrastructure/postgres"
)

var testDBCounter atomic.Int64

// newTestFactory migrates a fresh in-memory store and returns a factory
// handing out units of work over it, the way the container wires services.
func newTestFactory(t *testing.T) repositories.DataUnitOfWorkFactory {
	t.Helper()

	dsn := fmt.Sprintf("file:serviceimpl_test_%d?mode=memory&cache=shared&_fk=1&_busy_timeout=5000",
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

	source := postgres.MigrationSource{
		FS:      os.DirFS("testdata/migrations"),
		Dir:     "app",
		Dialect: goose.DialectSQLite3,
	}

	setup := postgres.NewDataUnitOfWork(db, source)
	require.NoError(t, setup.Migrate(context.Background()))
	require.NoError(t, setup.Close())

	return func() repositories.DataUnitOfWork {
		return postgres.NewDataUnitOfWork(db, source)
	}
}
