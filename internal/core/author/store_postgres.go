// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

func (repository *PostgresRepository) ListEdges(ctx context.Context) ([]Edge, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s;
	`,
		schema.GutenbergMentionedAuthor.MentionedAuthor,
		schema.GutenbergMentionedAuthor.MentionedBy,
		schema.GutenbergMentionedAuthor.BooksMentionedIn,
		schema.GutenbergMentionedAuthor.Table,
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
		return nil, dberr.Wrap(err, "list_mentioned_authors")
	}

	edges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Edge, error) {
		var edge Edge
		err := row.Scan(&edge.MentionedAuthor, &edge.MentionedBy, &edge.BooksMentionedIn)
		return edge, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_mentioned_author")
	}

	return edges, nil
}
