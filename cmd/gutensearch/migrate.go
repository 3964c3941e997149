// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gutensearch/internal/platform/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the gutenberg schema",
	Long: `Create or inspect the gutenberg schema (books, paragraphs, mentioned authors).

Migrations only create empty tables and indexes; importing the books is a
separate offline job.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}

		status, err := migration.CurrentStatus(cfg.DatabaseURL, cfg.MigrationPath, log)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case status.Empty:
			fmt.Fprintln(out, "no migrations applied")
		case status.Dirty:
			fmt.Fprintf(out, "version %d (dirty, manual intervention required)\n", status.Version)
		default:
			fmt.Fprintf(out, "version %d\n", status.Version)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}
