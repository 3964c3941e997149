// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"time"
)

// Repository executes built search statements.
type Repository interface {
	Fetch(ctx context.Context, query Query) ([]RawRow, error)
}

// Cache stores shaped precise results. Implementations are best effort:
// failures are reported as misses and never fail a search.
type Cache interface {
	Get(ctx context.Context, req Request) ([]ResultRow, bool)
	Set(ctx context.Context, req Request, rows []ResultRow)
}

// QueryLog records executed searches.
type QueryLog interface {
	Record(ctx context.Context, entry LogEntry)
}

// LogEntry is one query log record.
type LogEntry struct {
	Mode     Mode      `json:"mode"`
	Time     time.Time `json:"time"`
	Language string    `json:"language"`
	Query    string    `json:"query"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
	Rows     int       `json:"rows"`
}

// NopCache is used when no cache is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, Request) ([]ResultRow, bool) { return nil, false }
func (NopCache) Set(context.Context, Request, []ResultRow)        {}

// NopQueryLog is used when no query log is configured.
type NopQueryLog struct{}

func (NopQueryLog) Record(context.Context, LogEntry) {}
