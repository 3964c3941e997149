// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/gutensearch/internal/platform/constants"
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Full text search over Project Gutenberg books",
	Long: `Gutensearch searches the paragraphs of Project Gutenberg books stored in
PostgreSQL and explains how authors are connected through the authors they mention.

Configuration is read from the environment (and an optional .env file):
  DATABASE_URL or DB_CONFIG_PATH, REDIS_URL, QUERY_TIMEOUT, LOG_FORMAT, ...`,
	Version:       constants.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(versionCmd)
}
