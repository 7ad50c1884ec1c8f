package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	maintenanceDatabase = "postgres"

	codeInsufficientPrivilege = "42501"
	codeDuplicateDatabase     = "42P04"
)

// ErrInsufficientPrivilege is returned when the configured role may not create databases.
var ErrInsufficientPrivilege = errors.New("insufficient privilege to create database")

// EnsureDatabase connects to the maintenance database with the credentials of
// databaseURL and creates the target database when it does not exist yet.
// It reports whether the database was created.
func EnsureDatabase(ctx context.Context, databaseURL string) (bool, error) {
	target, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return false, fmt.Errorf("failed to parse database URL: %w", err)
	}

	name := target.Database
	if name == "" || name == maintenanceDatabase {
		return false, nil
	}

	admin := target.Copy()
	admin.Database = maintenanceDatabase

	conn, err := pgx.ConnectConfig(ctx, admin)
	if err != nil {
		return false, fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check database existence: %w", err)
	}
	if exists {
		return false, nil
	}

	// CREATE DATABASE cannot take bind parameters.
	if _, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case codeDuplicateDatabase:
				return false, nil
			case codeInsufficientPrivilege:
				return false, fmt.Errorf("%w %q", ErrInsufficientPrivilege, name)
			}
		}
		return false, fmt.Errorf("failed to create database %q: %w", name, err)
	}

	return true, nil
}
