package postgres

import (
	"embed"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/app/*.sql migrations/identity/*.sql
var migrationsFS embed.FS

// MigrationSource tells a unit of work where its goose migration set lives
// and which dialect to run it with. Tests substitute their own source.
type MigrationSource struct {
	FS      fs.FS
	Dir     string
	Dialect goose.Dialect
}

func (s MigrationSource) fsys() (fs.FS, error) {
	if s.Dir == "" {
		return s.FS, nil
	}
	return fs.Sub(s.FS, s.Dir)
}

// AppMigrations is the versioned migration set for the main store.
func AppMigrations() MigrationSource {
	return MigrationSource{FS: migrationsFS, Dir: "migrations/app", Dialect: goose.DialectPostgres}
}

// IdentityMigrations is the versioned migration set for the identity store.
func IdentityMigrations() MigrationSource {
	return MigrationSource{FS: migrationsFS, Dir: "migrations/identity", Dialect: goose.DialectPostgres}
}
