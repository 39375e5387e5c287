// Package migrate applies the embedded SQL schema.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var fs embed.FS

// lockID serializes concurrent migrators on the same database.
const lockID = 7_410_352

// Files lists the embedded migrations in the order they are applied.
func Files() ([]string, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	return files, nil
}

// Up applies every migration not yet recorded in schema_migrations. Each file runs in its own transaction.
//
// Returns:
//   - []string: the files applied by this call.
//   - error: the first failure; earlier files stay applied.
func Up(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	const op = "migrate.Up"

	files, err := Files()
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if _, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	var applied []string
	for _, f := range files {
		done, err := apply(ctx, pool, f)
		if err != nil {
			return applied, fmt.Errorf("%s: apply %s: %w", op, f, err)
		}
		if done {
			applied = append(applied, f)
		}
	}

	return applied, nil
}

func apply(ctx context.Context, pool *pgxpool.Pool, file string) (bool, error) {
	b, err := fs.ReadFile(file)
	if err != nil {
		return false, err
	}

	applied := false

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockID); err != nil {
			return err
		}

		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`,
			file,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		if _, err := tx.Exec(ctx, string(b)); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations(version) VALUES ($1)`, file); err != nil {
			return err
		}

		applied = true
		return nil
	})

	return applied, err
}
