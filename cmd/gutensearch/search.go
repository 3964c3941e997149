// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/internal/platform/constants"
	"github.com/taibuivan/gutensearch/pkg/pagination"
)

var (
	searchLanguage string
	searchLimit    int
	searchOffset   int
	outputCSV      bool
	outputRaw      bool
)

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Ranked phrase search",
	Long: `Search paragraphs for the exact phrase, most relevant books first.

Examples:
  gutensearch search the best of times
  gutensearch search --language French --limit 5 --offset 6 longtemps
  gutensearch search --csv call me Ishmael > ishmael.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), os.Stderr, snapshots{})
		if err != nil {
			return err
		}
		defer rt.Close()

		window := pagination.Window{Limit: searchLimit, Offset: searchOffset}
		result, err := rt.search.Search(cmd.Context(), searchLanguage, strings.Join(args, " "), window)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover <terms...>",
	Short: "Random sample of loosely matching books",
	Long: `Match the words in any order and show up to 30 random matching books.

Examples:
  gutensearch discover white whale
  gutensearch discover --language German --csv Sehnsucht`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), os.Stderr, snapshots{})
		if err != nil {
			return err
		}
		defer rt.Close()

		result, err := rt.search.Discover(cmd.Context(), searchLanguage, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

// printResult writes CSV, or markdown rendered with glamour when stdout is a terminal.
func printResult(out io.Writer, result *search.Result) error {
	if outputCSV {
		return search.WriteCSV(out, result.Request.Mode, result.Rows)
	}

	markdown := search.Markdown(result)
	if !outputRaw && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(markdown, "dark")
		if err == nil {
			_, err = fmt.Fprint(out, rendered)
			return err
		}
	}

	_, err := fmt.Fprint(out, markdown)
	return err
}

func init() {
	for _, cmd := range []*cobra.Command{searchCmd, discoverCmd} {
		cmd.Flags().StringVarP(&searchLanguage, "language", "l", "English", "Book language")
		cmd.Flags().BoolVar(&outputCSV, "csv", false, "Print CSV instead of markdown")
		cmd.Flags().BoolVar(&outputRaw, "raw", false, "Print markdown without terminal rendering")
	}

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", constants.DefaultLimit, "Rows to show")
	searchCmd.Flags().IntVar(&searchOffset, "offset", constants.DefaultOffset, "Starting row (1-based)")
}
