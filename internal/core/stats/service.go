// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo     Repository
	logger   *slog.Logger
	snapshot atomic.Pointer[Snapshot]
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load computes the statistics snapshot.
func (service *Service) Load(ctx context.Context) (*Snapshot, error) {
	var (
		languages []LanguageCount
		lengths   []BookLength
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		languages, err = service.repo.BooksPerLanguage(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		lengths, err = service.repo.BookLengths(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if languages == nil {
		languages = []LanguageCount{}
	}

	snapshot := &Snapshot{
		Languages: languages,
		Lengths:   BuildHistogram(lengths, HistogramBins),
	}
	service.snapshot.Store(snapshot)

	service.logger.Info("stats_snapshot_loaded",
		slog.Int("languages", len(languages)),
		slog.Int("books_with_length", len(lengths)),
	)

	return snapshot, nil
}

// Snapshot returns the loaded statistics, or empty ones before [Service.Load].
func (service *Service) Snapshot() *Snapshot {
	if snapshot := service.snapshot.Load(); snapshot != nil {
		return snapshot
	}
	return &Snapshot{Languages: []LanguageCount{}, Lengths: BuildHistogram(nil, HistogramBins)}
}
