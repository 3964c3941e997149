// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

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

func (repository *PostgresRepository) BooksPerLanguage(ctx context.Context) ([]LanguageCount, error) {
	book := schema.GutenbergBook
	query := fmt.Sprintf(`
		SELECT %[1]s, count(*) AS books, lower(%[1]s) IN (SELECT %[2]s FROM %[3]s) AS supported
		FROM %[4]s
		WHERE %[1]s IS NOT NULL
		GROUP BY %[1]s
		ORDER BY books DESC, supported DESC, %[1]s ASC;
	`,
		book.Language,
		schema.PgTSConfig.CfgName,
		schema.PgTSConfig.Table,
		book.Table,
	)

	return collect[LanguageCount](ctx, repository, query, "books_per_language", func(row pgx.CollectableRow) (LanguageCount, error) {
		var count LanguageCount
		err := row.Scan(&count.Language, &count.Books, &count.Supported)
		return count, err
	})
}

func (repository *PostgresRepository) BookLengths(ctx context.Context) ([]BookLength, error) {
	book := schema.GutenbergBook
	query := fmt.Sprintf(`
		SELECT
			CASE WHEN %[1]s IN ($1, $2, $3) THEN %[1]s ELSE $4 END AS length_group,
			%[2]s
		FROM %[3]s
		WHERE %[2]s <> 0;
	`,
		book.Language,
		book.Length,
		book.Table,
	)

	return collect[BookLength](ctx, repository, query, "book_lengths", func(row pgx.CollectableRow) (BookLength, error) {
		var length BookLength
		err := row.Scan(&length.Group, &length.Length)
		return length, err
	}, GroupEnglish, GroupFrench, GroupGerman, GroupOther)
}

// collect runs one statement on its own connection and scans every row.
func collect[T any](ctx context.Context, repository *PostgresRepository, query, action string, scan pgx.RowToFunc[T], args ...any) ([]T, error) {
	queryCtx, cancel := context.WithTimeout(ctx, repository.timeout)
	defer cancel()

	conn, err := repository.db.Acquire(queryCtx)
	if err != nil {
		return nil, dberr.Wrap(err, "acquire_connection")
	}
	defer conn.Release()

	rows, err := conn.Query(queryCtx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return items, nil
}
