// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/gutensearch/internal/platform/dberr"
	"github.com/taibuivan/gutensearch/pkg/pagination"
)

type Service struct {
	languages LanguageResolver
	builder   *Builder
	repo      Repository
	cache     Cache
	queryLog  QueryLog
	logger    *slog.Logger
	flight    singleflight.Group
}

// NewService wires a search service. A nil cache or query log disables that feature.
func NewService(languages LanguageResolver, repo Repository, cache Cache, queryLog QueryLog, logger *slog.Logger) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	if queryLog == nil {
		queryLog = NopQueryLog{}
	}

	return &Service{
		languages: languages,
		builder:   NewBuilder(),
		repo:      repo,
		cache:     cache,
		queryLog:  queryLog,
		logger:    logger,
	}
}

// Search runs a ranked phrase search for one page of books.
//
// Identical concurrent searches share a single store round trip, and results
// are served from the cache while they are fresh.
func (service *Service) Search(ctx context.Context, languageName, terms string, window pagination.Window) (*Result, error) {
	req, err := NewPreciseRequest(service.languages, languageName, terms, window)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	if rows, ok := service.cache.Get(ctx, req); ok {
		service.record(ctx, req, len(rows), startTime, true)
		return &Result{Request: req, Rows: rows, Cached: true}, nil
	}

	// The shared call must not die with whichever caller started it.
	resultChan := service.flight.DoChan(req.Fingerprint(), func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)

		raws, err := service.repo.Fetch(flightCtx, service.builder.Precise(req))
		if err != nil {
			return nil, err
		}

		rows := Shape(ModePrecise, raws)
		service.cache.Set(flightCtx, req, rows)
		return rows, nil
	})

	select {
	case <-ctx.Done():
		return nil, dberr.Wrap(ctx.Err(), "search_abandoned")
	case outcome := <-resultChan:
		if outcome.Err != nil {
			return nil, outcome.Err
		}

		rows := outcome.Val.([]ResultRow)
		service.record(ctx, req, len(rows), startTime, false)
		return &Result{Request: req, Rows: rows}, nil
	}
}

// Discover returns a random sample of books loosely matching terms.
// Results are never cached: every call draws a new sample.
func (service *Service) Discover(ctx context.Context, languageName, terms string) (*Result, error) {
	req, err := NewDiscoveryRequest(service.languages, languageName, terms)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	raws, err := service.repo.Fetch(ctx, service.builder.Discovery(req))
	if err != nil {
		return nil, err
	}

	rows := Shape(ModeDiscovery, raws)
	service.record(ctx, req, len(rows), startTime, false)
	return &Result{Request: req, Rows: rows}, nil
}

// record appends to the query log and emits the search log line.
func (service *Service) record(ctx context.Context, req Request, count int, startTime time.Time, cached bool) {
	entry := LogEntry{
		Mode:     req.Mode,
		Time:     startTime.UTC(),
		Language: req.Language.Config,
		Query:    req.Terms,
		Limit:    req.Window.Limit,
		Offset:   req.Window.Offset,
		Rows:     count,
	}
	if req.Mode == ModeDiscovery {
		entry.Offset = 0
	}

	service.queryLog.Record(ctx, entry)

	service.logger.InfoContext(ctx, "search_executed",
		slog.String("mode", string(req.Mode)),
		slog.String("language", req.Language.Config),
		slog.Int("limit", entry.Limit),
		slog.Int("offset", entry.Offset),
		slog.Int("rows", count),
		slog.Bool("cached", cached),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)
}
