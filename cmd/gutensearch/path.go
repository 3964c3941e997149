// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Shortest mention path between two authors",
	Long: `Find how two authors are connected through the authors mentioned in their books.

Names must match the Project Gutenberg spelling exactly.

Example:
  gutensearch path "Marcel Proust" "Walter Scott"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), os.Stderr, snapshots{authors: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		result, err := rt.authors.ShortestPath(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Shortest path (%d hops): %s\n", result.Hops, strings.Join(result.Authors, " -> "))
		return nil
	},
}
