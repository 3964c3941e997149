// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListEdges(ctx context.Context) ([]Edge, error)
}
