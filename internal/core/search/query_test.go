// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/core/language"
	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/pkg/pagination"
)

var testLanguages = language.NewSet([]string{"English", "French", "German"})

func preciseRequest(t *testing.T, lang, terms string, limit, offset int) search.Request {
	t.Helper()
	req, err := search.NewPreciseRequest(testLanguages, lang, terms, pagination.Window{Limit: limit, Offset: offset})
	require.NoError(t, err)
	return req
}

func discoveryRequest(t *testing.T, lang, terms string) search.Request {
	t.Helper()
	req, err := search.NewDiscoveryRequest(testLanguages, lang, terms)
	require.NoError(t, err)
	return req
}

/*
TestBuilder_TextIndependentOfTerms verifies that search terms only ever travel
as bound parameters.
*/
func TestBuilder_TextIndependentOfTerms(t *testing.T) {
	builder := search.NewBuilder()
	hostile := []string{
		"the best of times",
		"'; DROP TABLE gutenberg.all_data; --",
		"$1 $2 $99",
		"naïve café — ünïcødé",
		"%s %d %[1]s",
	}

	basePrecise := builder.Precise(preciseRequest(t, "English", "whale", 10, 1)).SQL
	baseDiscovery := builder.Discovery(discoveryRequest(t, "English", "whale")).SQL

	for _, terms := range hostile {
		t.Run(terms, func(t *testing.T) {
			precise := builder.Precise(preciseRequest(t, "French", terms, 5, 7))
			discovery := builder.Discovery(discoveryRequest(t, "German", terms))

			assert.Equal(t, basePrecise, precise.SQL)
			assert.Equal(t, baseDiscovery, discovery.SQL)
			assert.NotContains(t, precise.SQL, terms)
			assert.NotContains(t, discovery.SQL, terms)
			assert.Equal(t, terms, precise.Args[1])
			assert.Equal(t, terms, discovery.Args[1])
		})
	}
}

/*
TestBuilder_Precise checks the phrase semantics and the 1-based window translation.
*/
func TestBuilder_Precise(t *testing.T) {
	query := search.NewBuilder().Precise(preciseRequest(t, "english", "the best of times", 5, 11))

	assert.Contains(t, query.SQL, "phraseto_tsquery")
	assert.Contains(t, query.SQL, "ts_rank_cd")
	assert.Contains(t, query.SQL, "avg(m.rank)")
	assert.Contains(t, query.SQL, "LIMIT $4 OFFSET $5")
	assert.Contains(t, query.SQL, `E'\n[...]\n'`)
	assert.Contains(t, query.SQL, "10000")
	assert.NotContains(t, query.SQL, "random()")

	require.Len(t, query.Args, 5)
	assert.Equal(t, "english", query.Args[0])
	assert.Equal(t, "MaxFragments=1000, StartSel=**, StopSel=**", query.Args[2])
	assert.Equal(t, 5, query.Args[3])
	assert.Equal(t, 10, query.Args[4])
}

/*
TestBuilder_Paging verifies consecutive pages request disjoint windows.
*/
func TestBuilder_Paging(t *testing.T) {
	builder := search.NewBuilder()

	first := builder.Precise(preciseRequest(t, "English", "sea", 10, 1))
	second := builder.Precise(preciseRequest(t, "English", "sea", 10, 11))

	assert.Equal(t, 0, first.Args[4])
	assert.Equal(t, 10, second.Args[4])
	assert.Equal(t, first.Args[4].(int)+first.Args[3].(int), second.Args[4])
}

/*
TestBuilder_Discovery checks the loose match and the fixed sample size.
*/
func TestBuilder_Discovery(t *testing.T) {
	query := search.NewBuilder().Discovery(discoveryRequest(t, "English", "white whale"))

	assert.Contains(t, query.SQL, "plainto_tsquery")
	assert.NotContains(t, query.SQL, "phraseto_tsquery")
	assert.Contains(t, query.SQL, "random()")
	assert.Contains(t, query.SQL, "LIMIT $4")
	assert.NotContains(t, query.SQL, "OFFSET")

	require.Len(t, query.Args, 4)
	assert.Equal(t, 30, query.Args[3])
}

/*
TestBuilder_Build dispatches on the request mode.
*/
func TestBuilder_Build(t *testing.T) {
	builder := search.NewBuilder()

	assert.True(t, strings.Contains(builder.Build(discoveryRequest(t, "English", "x")).SQL, "plainto_tsquery"))
	assert.True(t, strings.Contains(builder.Build(preciseRequest(t, "English", "x", 1, 1)).SQL, "phraseto_tsquery"))
}
