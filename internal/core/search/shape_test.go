// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/pkg/pointer"
)

/*
TestLinkTitle_Idempotent ensures linking twice never double-wraps.
*/
func TestLinkTitle_Idempotent(t *testing.T) {
	once := search.LinkTitle("Moby Dick", 2701)
	twice := search.LinkTitle(once, 2701)

	assert.Equal(t, "[Moby Dick](https://www.gutenberg.org/ebooks/2701)", once)
	assert.Equal(t, once, twice)
}

/*
TestFormatScore uses one decimal of the percentage.
*/
func TestFormatScore(t *testing.T) {
	assert.Equal(t, "12.3", search.FormatScore(0.123))
	assert.Equal(t, "0.0", search.FormatScore(0))
	assert.Equal(t, "100.0", search.FormatScore(1))
}

/*
TestTruncate counts characters, not bytes.
*/
func TestTruncate(t *testing.T) {
	assert.Equal(t, "héllo", search.Truncate("héllo wörld", 5))
	assert.Equal(t, "abc", search.Truncate("abc", 10))
	assert.Equal(t, "", search.Truncate("abc", 0))
}

/*
TestFormatExcerpt bounds the excerpt deterministically and frames it once.
*/
func TestFormatExcerpt(t *testing.T) {
	long := strings.Repeat("ça **va** ", 3000)

	first := search.FormatExcerpt(long)
	again := search.FormatExcerpt(long)
	reshaped := search.FormatExcerpt(first)

	assert.Equal(t, first, again)
	assert.Equal(t, first, reshaped)
	assert.True(t, strings.HasPrefix(first, "  ..."))
	assert.True(t, strings.HasSuffix(first, "...  "))
	assert.Equal(t, 10_000+len("  ...")+len("...  "), utf8.RuneCountInString(first))
}

/*
TestShape_Precise keeps store order and formats each column.
*/
func TestShape_Precise(t *testing.T) {
	raws := []search.RawRow{
		{BookID: 98, Author: pointer.To("Charles Dickens"), Title: "A Tale of Two Cities", Snippets: "It was **the best of times**", Key: 0.5},
		{BookID: 1400, Author: nil, Title: "Great Expectations", Snippets: "**best**", Key: 0.25},
	}

	rows := search.Shape(search.ModePrecise, raws)
	require.Len(t, rows, 2)

	assert.Equal(t, "Charles Dickens", rows[0].Author)
	assert.Equal(t, "[A Tale of Two Cities](https://www.gutenberg.org/ebooks/98)", rows[0].Title)
	assert.Equal(t, "  ...It was **the best of times**...  ", rows[0].Excerpt)
	assert.Equal(t, "50.0", rows[0].Score)
	assert.Equal(t, "", rows[1].Author)
	assert.Equal(t, "25.0", rows[1].Score)
}

/*
TestShape_Discovery hides the random key from the score column.
*/
func TestShape_Discovery(t *testing.T) {
	rows := search.Shape(search.ModeDiscovery, []search.RawRow{{BookID: 1, Title: "T", Snippets: "s", Key: 0.42}})
	require.Len(t, rows, 1)

	assert.Empty(t, rows[0].Score)
	assert.Equal(t, 0.42, rows[0].Rand)
}

/*
TestShape_Empty returns an empty, non-nil slice.
*/
func TestShape_Empty(t *testing.T) {
	rows := search.Shape(search.ModePrecise, nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
