// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo    Repository
	logger  *slog.Logger
	catalog atomic.Pointer[Catalog]
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load reads both language lists and publishes the catalog used by [Service.Resolve].
func (service *Service) Load(ctx context.Context) (*Catalog, error) {
	var supported, unsupported []string

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		supported, err = service.repo.SupportedLanguages(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		unsupported, err = service.repo.UnsupportedLanguages(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if unsupported == nil {
		unsupported = []string{}
	}

	catalog := &Catalog{Supported: NewSet(supported), Unsupported: unsupported}
	service.catalog.Store(catalog)

	service.logger.Info("language_catalog_loaded",
		slog.Int("supported", catalog.Supported.Len()),
		slog.Int("unsupported", len(catalog.Unsupported)),
	)

	return catalog, nil
}

// Catalog returns the loaded catalog, or an empty one before [Service.Load].
func (service *Service) Catalog() *Catalog {
	if catalog := service.catalog.Load(); catalog != nil {
		return catalog
	}
	return &Catalog{Supported: NewSet(nil), Unsupported: []string{}}
}

// Resolve validates a language name against the loaded catalog.
func (service *Service) Resolve(name string) (Language, error) {
	return service.Catalog().Supported.Resolve(name)
}
