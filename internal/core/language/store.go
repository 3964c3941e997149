// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "context"

// Repository defines the data access contract.
type Repository interface {
	// SupportedLanguages lists distinct book languages whose lower-cased name is a text search configuration.
	SupportedLanguages(ctx context.Context) ([]string, error)
	// UnsupportedLanguages lists distinct book languages without a text search configuration.
	UnsupportedLanguages(ctx context.Context) ([]string, error)
}
