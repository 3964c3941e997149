// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres provides a managed PostgreSQL connection pool for the
// Gutensearch application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It manages the physical
// database connections (pgxpool). Repositories acquire a connection per query
// and release it on every exit path; the pool itself is the only shared
// resource and every connection it hands out is read-only.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Opinionated pool settings for the search workload.
const (
	// maxConns is the maximum number of connections in the pool.
	maxConns = 20
	// minConns keeps a warm set of connections to avoid cold-start latency.
	minConns = 2
	// maxConnLifetime ensures connections are periodically recycled.
	maxConnLifetime = 60 * time.Minute
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// healthCheckPeriod is the frequency of background connection health checks.
	healthCheckPeriod = 1 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// retryDelay is the base backoff between startup connection attempts.
	retryDelay = 500 * time.Millisecond
)

// Options tunes the session settings applied to every pooled connection.
type Options struct {
	// StatementTimeout is enforced server-side on every statement.
	StatementTimeout time.Duration
	// ConnectAttempts bounds the startup retries. Zero means a single attempt.
	ConnectAttempts uint
}

// NewPool creates and validates a new PostgreSQL connection pool.
//
// # Parameters
//   - ctx: Context for the initial connection attempts.
//   - dsn: A libpq-compatible connection string or postgres:// URL.
//   - opts: Session and retry settings.
//   - logger: Structured logger for pool-level events.
func NewPool(ctx context.Context, dsn string, opts Options, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	// Apply pool tuning parameters.
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	// AfterConnect is called each time a new physical connection is established.
	poolConfig.AfterConnect = func(ctx context.Context, connection *pgx.Conn) error {
		return configureSession(ctx, connection, opts.StatementTimeout)
	}

	attempts := opts.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}

	pool, err := retry.DoWithData(
		func() (*pgxpool.Pool, error) {
			connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			defer cancel()

			pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
			if err != nil {
				return nil, err
			}

			// Validate that we can actually reach the database.
			if err := Ping(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			return pool, nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warn("postgres_connect_retry",
				slog.Uint64("attempt", uint64(attempt+1)),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	stats := pool.Stat()
	logger.Info("postgres pool connected",
		slog.Int("max_conns", int(stats.MaxConns())),
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Duration("statement_timeout", opts.StatementTimeout),
	)

	return pool, nil
}

// configureSession applies the per-connection statement timeout and the
// read-only default. No statement issued through the pool may write.
func configureSession(ctx context.Context, connection *pgx.Conn, statementTimeout time.Duration) error {
	if statementTimeout > 0 {
		timeoutQuery := fmt.Sprintf("SET statement_timeout = %d", statementTimeout.Milliseconds())
		if _, err := connection.Exec(ctx, timeoutQuery); err != nil {
			return err
		}
	}

	_, err := connection.Exec(ctx, "SET default_transaction_read_only = on")
	return err
}

// Ping verifies that the PostgreSQL connection pool is healthy.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}
