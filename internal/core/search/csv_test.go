// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/pkg/pointer"
)

/*
TestWriteCSV_RoundTrip parses an export back and compares every text column.
*/
func TestWriteCSV_RoundTrip(t *testing.T) {
	rows := search.Shape(search.ModePrecise, []search.RawRow{
		{BookID: 1, Author: pointer.To(`Poe, Edgar "Allan"`), Title: "The Raven", Snippets: "Quoth the **Raven**\n[...]\n\"Nevermore.\"", Key: 0.3},
		{BookID: 2, Title: "Anonymous, a book", Snippets: strings.Repeat("x", 12_000), Key: 0.1},
	})

	var buffer bytes.Buffer
	require.NoError(t, search.WriteCSV(&buffer, search.ModePrecise, rows))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"author", "title", "relevant_paragraphs"}, records[0])
	for i, row := range rows {
		assert.Equal(t, []string{row.Author, row.Title, row.Excerpt}, records[i+1])
	}
}

/*
TestWriteCSV_Discovery appends the rand column.
*/
func TestWriteCSV_Discovery(t *testing.T) {
	rows := []search.ResultRow{{Author: "A", Title: "T", Excerpt: "E", Rand: 0.75}}

	var buffer bytes.Buffer
	require.NoError(t, search.WriteCSV(&buffer, search.ModeDiscovery, rows))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"author", "title", "relevant_paragraphs", "rand"}, records[0])
	assert.Equal(t, []string{"A", "T", "E", "0.75"}, records[1])
}

/*
TestWriteCSV_Empty still writes the header.
*/
func TestWriteCSV_Empty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, search.WriteCSV(&buffer, search.ModePrecise, []search.ResultRow{}))
	assert.Equal(t, "author,title,relevant_paragraphs\n", buffer.String())
}

/*
TestExportFilename builds a slug from the selection.
*/
func TestExportFilename(t *testing.T) {
	req := preciseRequest(t, "French", "À la recherche", 10, 1)
	assert.Equal(t, "precise-french-a-la-recherche.csv", search.ExportFilename(req))
}
