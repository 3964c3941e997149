// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gutensearch/internal/platform/database/schema"
	"github.com/taibuivan/gutensearch/internal/platform/dberr"
)

type PostgresRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepository(db *pgxpool.Pool, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, timeout: timeout}
}

func (repository *PostgresRepository) SupportedLanguages(ctx context.Context) ([]string, error) {
	return repository.listLanguages(ctx, "IN", "list_supported_languages")
}

func (repository *PostgresRepository) UnsupportedLanguages(ctx context.Context) ([]string, error) {
	return repository.listLanguages(ctx, "NOT IN", "list_unsupported_languages")
}

// listLanguages runs the membership query against pg_ts_config. operator is a
// fixed keyword chosen by the caller, never user input.
func (repository *PostgresRepository) listLanguages(ctx context.Context, operator, action string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE lower(%s) %s (SELECT %s FROM %s)
		ORDER BY %s ASC;
	`,
		schema.GutenbergBook.Language,
		schema.GutenbergBook.Table,
		schema.GutenbergBook.Language,
		operator,
		schema.PgTSConfig.CfgName,
		schema.PgTSConfig.Table,
		schema.GutenbergBook.Language,
	)

	queryCtx, cancel := context.WithTimeout(ctx, repository.timeout)
	defer cancel()

	conn, err := repository.db.Acquire(queryCtx)
	if err != nil {
		return nil, dberr.Wrap(err, "acquire_connection")
	}
	defer conn.Release()

	rows, err := conn.Query(queryCtx, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	languages, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_language")
	}

	return languages, nil
}
