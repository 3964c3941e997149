// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import "context"

// Repository defines the data access contract.
type Repository interface {
	BooksPerLanguage(ctx context.Context) ([]LanguageCount, error)
	BookLengths(ctx context.Context) ([]BookLength, error)
}
