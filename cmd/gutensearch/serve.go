// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gutensearch/internal/api"
	"github.com/taibuivan/gutensearch/internal/core/author"
	"github.com/taibuivan/gutensearch/internal/core/language"
	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/internal/core/stats"
	"github.com/taibuivan/gutensearch/internal/platform/constants"
	"github.com/taibuivan/gutensearch/internal/platform/postgres"
	redisstore "github.com/taibuivan/gutensearch/internal/platform/redis"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the Gutensearch HTTP API.

Startup loads the supported languages, the author mention graph and the corpus
statistics once; they stay fixed until the process restarts.

Examples:
  gutensearch serve               # port from SERVER_PORT (default 8080)
  gutensearch serve --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx, os.Stdout, snapshots{authors: true, stats: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		if servePort != "" {
			rt.cfg.ServerPort = servePort
		}

		deps := api.HealthDependencies{
			CheckDatabase: func(ctx context.Context) error {
				return postgres.Ping(ctx, rt.pool)
			},
		}
		if rt.redis != nil {
			deps.CheckCache = func(ctx context.Context) error {
				return redisstore.Ping(ctx, rt.redis)
			}
		}
		liveness, readiness := api.NewHealthHandlers(deps, rt.log)

		server := api.NewServer(ctx, rt.cfg, rt.log, api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			Search:    search.NewHandler(rt.search),
			Language:  language.NewHandler(rt.languages),
			Author:    author.NewHandler(rt.authors),
			Stats:     stats.NewHandler(rt.stats),
		})

		serverErr := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		// Block until OS signal or server error.
		select {
		case <-ctx.Done():
			rt.log.Info("shutdown signal received")
		case err := <-serverErr:
			rt.log.Error("server startup error", slog.Any("error", err))
			return err
		}

		rt.log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
		if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
			rt.log.Error("shutdown error", slog.Any("error", err))
			return err
		}

		rt.log.Info("server stopped cleanly")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides SERVER_PORT)")
}
