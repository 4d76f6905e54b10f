package kv

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/ghuser/growthtrack/pkg/migrator"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the kv_entries schema migrations rooted at ".".
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// MigratePostgres applies the kv schema to the database at url.
func MigratePostgres(url string) error {
	if err := migrator.RunPostgresMigrations(url, Migrations()); err != nil {
		return fmt.Errorf("kv: migrate postgres: %w", err)
	}
	return nil
}
