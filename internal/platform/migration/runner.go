// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for
// creating the gutenberg schema on a fresh database.
//
// # Architecture
//
// Migrations only create empty tables and text search indexes; loading the
// corpus is an offline job. The server never runs them implicitly because its
// own pool is read-only: they are applied through the `migrate` command.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Status describes the schema version currently recorded in the database.
type Status struct {
	Version uint
	Dirty   bool
	// Empty is true when no migration was ever applied.
	Empty bool
}

// RunUp applies all pending UP migrations.
//
// # Parameters
//   - dsn: A libpq-compatible DSN or postgres:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, closeFn, err := open(dsn, migrationsPath, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	current, err := version(migrator)
	if err != nil {
		return err
	}

	if current.Dirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", current.Version)
	}

	logger.Info("migration_started", slog.Int("current_version", int(current.Version)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Int("from_version", int(current.Version)),
		slog.Int("to_version", int(newVersion)),
	)

	return nil
}

// CurrentStatus reports the applied schema version without changing anything.
func CurrentStatus(dsn string, migrationsPath string, logger *slog.Logger) (Status, error) {
	migrator, closeFn, err := open(dsn, migrationsPath, logger)
	if err != nil {
		return Status{}, err
	}
	defer closeFn()

	return version(migrator)
}

func open(dsn, migrationsPath string, logger *slog.Logger) (*migrate.Migrate, func(), error) {
	migrator, err := migrate.New("file://"+migrationsPath, ToPgx5DSN(dsn))
	if err != nil {
		return nil, nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}

	// Enable verbose logging via the slog bridge.
	migrator.Log = &migrateLogger{logger: logger}

	closeFn := func() {
		sourceError, dbError := migrator.Close()
		if sourceError != nil {
			logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
		}
		if dbError != nil {
			logger.Error("migration_db_close_failed", slog.Any("error", dbError))
		}
	}

	return migrator, closeFn, nil
}

func version(migrator *migrate.Migrate) (Status, error) {
	v, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{Empty: true}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration: failed to get current version: %w", err)
	}
	return Status{Version: v, Dirty: dirty}, nil
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// required by golang-migrate. Other DSNs are returned unchanged.
func ToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
