// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gutensearch/internal/platform/dberr"
)

type PostgresRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepository(db *pgxpool.Pool, timeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, timeout: timeout}
}

// Fetch runs query on a dedicated connection bounded by the query timeout.
// The connection goes back to the pool on every return path.
func (repository *PostgresRepository) Fetch(ctx context.Context, query Query) ([]RawRow, error) {
	queryCtx, cancel := context.WithTimeout(ctx, repository.timeout)
	defer cancel()

	conn, err := repository.db.Acquire(queryCtx)
	if err != nil {
		return nil, dberr.Wrap(err, "acquire_connection")
	}
	defer conn.Release()

	rows, err := conn.Query(queryCtx, query.SQL, query.Args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_paragraphs")
	}

	raws, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RawRow, error) {
		var raw RawRow
		err := row.Scan(&raw.BookID, &raw.Author, &raw.Title, &raw.Snippets, &raw.Key)
		return raw, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_search_row")
	}

	return raws, nil
}
