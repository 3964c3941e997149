// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gutensearch/internal/core/search"
)

/*
TestCacheKey is stable per request and namespaced.
*/
func TestCacheKey(t *testing.T) {
	key := search.CacheKey(preciseRequest(t, "English", "sea", 10, 1))

	assert.True(t, strings.HasPrefix(key, "search:precise:"))
	assert.Len(t, key, len("search:precise:")+64)
	assert.Equal(t, key, search.CacheKey(preciseRequest(t, "english", "sea", 10, 1)))
	assert.NotEqual(t, key, search.CacheKey(preciseRequest(t, "English", "sea", 10, 11)))
}
