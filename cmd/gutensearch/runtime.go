// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/gutensearch/internal/core/author"
	"github.com/taibuivan/gutensearch/internal/core/language"
	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/internal/core/stats"
	"github.com/taibuivan/gutensearch/internal/platform/config"
	"github.com/taibuivan/gutensearch/internal/platform/constants"
	"github.com/taibuivan/gutensearch/internal/platform/logger"
	"github.com/taibuivan/gutensearch/internal/platform/postgres"
	redisstore "github.com/taibuivan/gutensearch/internal/platform/redis"
)

// snapshots selects which startup data a command needs.
type snapshots struct {
	authors bool
	stats   bool
}

// runtime holds the shared resources and services of one process.
type runtime struct {
	cfg   *config.Config
	log   *slog.Logger
	pool  *pgxpool.Pool
	redis *goredis.Client

	languages *language.Service
	authors   *author.Service
	stats     *stats.Service
	search    *search.Service
}

// loadConfig reads the configuration and builds the process logger.
func loadConfig(logOutput io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logOutput, cfg.LogFormat, cfg.Debug)
	slog.SetDefault(log)

	log.Debug("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.Bool("cache", cfg.HasCache()),
		slog.Duration("query_timeout", cfg.QueryTimeout),
	)
	return cfg, log, nil
}

// newRuntime connects to the stores and loads the immutable startup data.
func newRuntime(ctx context.Context, logOutput io.Writer, want snapshots) (*runtime, error) {
	cfg, log, err := loadConfig(logOutput)
	if err != nil {
		return nil, err
	}

	startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer cancel()

	// # PostgreSQL
	pool, err := postgres.NewPool(startupCtx, cfg.DatabaseURL, postgres.Options{
		StatementTimeout: cfg.QueryTimeout,
		ConnectAttempts:  cfg.DBConnectAttempts,
	}, log)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, log: log, pool: pool}

	// # Redis (optional)
	if cfg.HasCache() {
		client, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("redis_unavailable_cache_disabled", slog.Any("error", err))
		} else {
			rt.redis = client
		}
	}

	// # Services
	rt.languages = language.NewService(language.NewPostgresRepository(pool, cfg.QueryTimeout), log)
	rt.authors = author.NewService(author.NewPostgresRepository(pool, cfg.QueryTimeout), log)
	rt.stats = stats.NewService(stats.NewPostgresRepository(pool, cfg.QueryTimeout), log)

	var (
		cache    search.Cache
		queryLog search.QueryLog
	)
	if rt.redis != nil {
		cache = search.NewRedisCache(rt.redis, cfg.CacheTTL, log)
		queryLog = search.NewRedisQueryLog(rt.redis, log)
	}
	rt.search = search.NewService(rt.languages, search.NewPostgresRepository(pool, cfg.QueryTimeout), cache, queryLog, log)

	// # Startup snapshots
	group, groupCtx := errgroup.WithContext(startupCtx)
	group.Go(func() error {
		_, err := rt.languages.Load(groupCtx)
		return err
	})
	if want.authors {
		group.Go(func() error {
			_, err := rt.authors.Load(groupCtx)
			return err
		})
	}
	if want.stats {
		group.Go(func() error {
			_, err := rt.stats.Load(groupCtx)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		rt.Close()
		return nil, fmt.Errorf("load startup data: %w", err)
	}

	return rt, nil
}

// Close releases the store clients.
func (rt *runtime) Close() {
	if rt.redis != nil {
		if err := rt.redis.Close(); err != nil {
			rt.log.Error("redis close error", slog.Any("error", err))
		}
	}
	rt.pool.Close()
}
