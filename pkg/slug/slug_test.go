// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gutensearch/pkg/slug"
)

/*
TestFrom folds accents and collapses separators.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"precise English the best of times", "precise-english-the-best-of-times"},
		{"discovery French À la recherche du temps perdu", "discovery-french-a-la-recherche-du-temps-perdu"},
		{"  --Ünïcödé!!  ", "unicode"},
		{"", ""},
		{"日本語", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

/*
TestFrom_Length caps long inputs without a trailing hyphen.
*/
func TestFrom_Length(t *testing.T) {
	got := slug.From(strings.Repeat("ab ", 100))
	assert.LessOrEqual(t, len(got), 80)
	assert.False(t, strings.HasSuffix(got, "-"))
}
