package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the schema migrations bundled with the binary.
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// DB is the subset of a pgx pool the migrator needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Migrator manages database migrations
type Migrator struct {
	db     DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db DB, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Migrate applies every *.sql file of files that has not been applied yet, in
// lexical order. The version of a file is the prefix before its first underscore
// ("001_create_employees.sql" => "001").
func (m *Migrator) Migrate(ctx context.Context, files fs.FS) (int, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	applied := 0
	for _, name := range sqlFiles {
		ok, err := m.apply(ctx, files, name)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}

	return applied, nil
}

// apply runs one migration file and records it in the same transaction.
func (m *Migrator) apply(ctx context.Context, files fs.FS, name string) (bool, error) {
	version := strings.Split(path.Base(name), "_")[0]

	alreadyApplied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if alreadyApplied {
		m.logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
		return false, nil
	}

	content, err := fs.ReadFile(files, name)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file %s: %w", name, err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err = tx.Exec(ctx, string(content)); err != nil {
		return false, fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
	}

	if _, err = tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now().UTC()); err != nil {
		return false, fmt.Errorf("failed to record migration %s: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit migration %s: %w", name, err)
	}

	m.logger.Info().Str("file", name).Str("version", version).Msg("Migration applied")
	return true, nil
}
