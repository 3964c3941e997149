// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	goruntime "runtime"

	"github.com/spf13/cobra"

	"github.com/taibuivan/gutensearch/internal/platform/constants"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", constants.AppName, constants.AppVersion)
		fmt.Fprintf(out, "  Go: %s %s/%s\n", goruntime.Version(), goruntime.GOOS, goruntime.GOARCH)
	},
}
