package postgres

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	ierr "github.com/flexprice/rates/internal/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS rates_schema_migrations (
	version    VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate applies every embedded migration not yet recorded, each in its own
// transaction. It returns the versions applied by this call.
func (db *DB) Migrate(ctx context.Context) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, WrapError(err, "schema migrations")
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM rates_schema_migrations`); err != nil {
		return nil, WrapError(err, "schema migrations")
	}
	done := make(map[string]struct{}, len(applied))
	for _, version := range applied {
		done[version] = struct{}{}
	}

	names, err := MigrationNames()
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, version := range names {
		if _, ok := done[version]; ok {
			continue
		}

		body, err := migrationFiles.ReadFile("migrations/" + version + ".sql")
		if err != nil {
			return versions, ierr.WithError(err).Mark(ierr.ErrSystem)
		}

		err = db.WithTx(ctx, func(ctx context.Context) error {
			q := db.GetQuerier(ctx)
			if _, err := q.ExecContext(ctx, string(body)); err != nil {
				return WrapError(err, "migration "+version)
			}
			_, err := q.ExecContext(ctx, `INSERT INTO rates_schema_migrations (version) VALUES ($1)`, version)
			return WrapError(err, "schema migrations")
		})
		if err != nil {
			return versions, err
		}

		db.logger.WithContext(ctx).Infow("applied migration", "version", version)
		versions = append(versions, version)
	}
	return versions, nil
}

// MigrationNames lists the embedded migration versions in apply order
func MigrationNames() ([]string, error) {
	files, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	sort.Strings(files)

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(file, "migrations/"), ".sql"))
	}
	return names, nil
}
