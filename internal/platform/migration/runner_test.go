// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gutensearch/internal/platform/migration"
)

/*
TestToPgx5DSN verifies the scheme rewrite required by the pgx/v5 migrate driver.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://reader@localhost/gutensearch", "pgx5://reader@localhost/gutensearch"},
		{"postgresql://reader@localhost/gutensearch", "pgx5://reader@localhost/gutensearch"},
		{"pgx5://reader@localhost/gutensearch", "pgx5://reader@localhost/gutensearch"},
		{"host=localhost dbname=gutensearch", "host=localhost dbname=gutensearch"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
		})
	}
}
