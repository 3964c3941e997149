// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"fmt"

	"github.com/taibuivan/gutensearch/internal/platform/constants"
	"github.com/taibuivan/gutensearch/internal/platform/database/schema"
)

// Query is a statement with its positional arguments.
type Query struct {
	SQL  string
	Args []any
}

// Builder renders the two search statements.
//
// The SQL text of each mode is fixed when the Builder is created. Requests
// only ever change Args, so user text can never reach the statement itself.
type Builder struct {
	preciseSQL   string
	discoverySQL string
}

// NewBuilder prepares the statements for both modes.
func NewBuilder() *Builder {
	return &Builder{
		preciseSQL: renderSQL(statement{
			tsQuery: "phraseto_tsquery",
			rank:    fmt.Sprintf("ts_rank_cd(p.%s, q.query, 32)", schema.GutenbergParagraph.SearchVector),
			sortKey: "avg(m.rank)",
			orderBy: "sort_key DESC, b." + schema.GutenbergBook.ID + " ASC",
			window:  "LIMIT $4 OFFSET $5",
		}),
		discoverySQL: renderSQL(statement{
			tsQuery: "plainto_tsquery",
			rank:    "NULL::real",
			sortKey: "random()",
			orderBy: "sort_key DESC",
			window:  "LIMIT $4",
		}),
	}
}

// Precise builds the ranked phrase query.
//
// Args: $1 regconfig, $2 terms, $3 headline options, $4 limit, $5 zero-based offset.
func (builder *Builder) Precise(req Request) Query {
	return Query{
		SQL: builder.preciseSQL,
		Args: []any{
			req.Language.Config,
			req.Terms,
			HeadlineOptions(),
			req.Window.Limit,
			req.Window.SQLOffset(),
		},
	}
}

// Discovery builds the random sample query.
//
// Args: $1 regconfig, $2 terms, $3 headline options, $4 sample size.
func (builder *Builder) Discovery(req Request) Query {
	return Query{
		SQL: builder.discoverySQL,
		Args: []any{
			req.Language.Config,
			req.Terms,
			HeadlineOptions(),
			constants.DiscoverySampleSize,
		},
	}
}

// Build dispatches on the request mode.
func (builder *Builder) Build(req Request) Query {
	if req.Mode == ModeDiscovery {
		return builder.Discovery(req)
	}
	return builder.Precise(req)
}

// HeadlineOptions returns the ts_headline option string: many fragments, markdown bold markers.
func HeadlineOptions() string {
	return fmt.Sprintf("MaxFragments=%d, StartSel=%s, StopSel=%s",
		constants.HeadlineFragments, constants.HighlightMarker, constants.HighlightMarker)
}

// statement holds the fixed fragments that differ between the two modes.
type statement struct {
	tsQuery string
	rank    string
	sortKey string
	orderBy string
	window  string
}

// renderSQL assembles one statement. None of the fragments come from a request.
func renderSQL(stmt statement) string {
	p := schema.GutenbergParagraph
	b := schema.GutenbergBook

	return fmt.Sprintf(`
		WITH q AS (
			SELECT $1::text::regconfig AS cfg, %[1]s($1::text::regconfig, $2::text) AS query
		),
		m AS (
			SELECT
				p.%[2]s AS num,
				%[3]s AS rank,
				ts_headline(q.cfg, p.%[4]s, q.query, $3::text) AS highlighted
			FROM %[5]s p
			CROSS JOIN q
			WHERE p.%[6]s = q.cfg
			  AND p.%[7]s @@ q.query
		)
		SELECT
			b.%[8]s,
			b.%[9]s,
			b.%[10]s,
			substr(string_agg(DISTINCT m.highlighted, E'\n[...]\n'), 1, %[11]d) AS snippets,
			%[12]s AS sort_key
		FROM m
		INNER JOIN %[13]s b ON m.num = b.%[8]s
		GROUP BY b.%[8]s, b.%[9]s, b.%[10]s
		ORDER BY %[14]s
		%[15]s;
	`,
		stmt.tsQuery, p.BookID, stmt.rank, p.Paragraph, p.Table, p.Language, p.SearchVector,
		b.ID, b.Author, b.Title, constants.MaxExcerptLength,
		stmt.sortKey, b.Table, stmt.orderBy, stmt.window,
	)
}
