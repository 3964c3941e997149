// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command gutensearch serves and queries the Project Gutenberg full text index.
//
// # Commands
//
//	serve     start the HTTP API
//	migrate   apply or inspect the schema migrations
//	search    ranked phrase search from the terminal
//	discover  random sample of loosely matching books
//	path      shortest mention path between two authors
//	version   print build information
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
