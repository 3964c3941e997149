// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stats precomputes the corpus statistics shown next to the search:
books per language and the distribution of book lengths.

Both are computed once at startup; the data never changes while the server runs.
*/
package stats

// LanguageCount is the number of books in one language.
type LanguageCount struct {
	Language  string `json:"language"`
	Books     int    `json:"books"`
	Supported bool   `json:"supported"`
}

// BookLength is the character count of one book, tagged with its length group.
type BookLength struct {
	Group  string
	Length int64
}

// Length groups. Every other language falls into GroupOther.
const (
	GroupEnglish = "English"
	GroupFrench  = "French"
	GroupGerman  = "German"
	GroupOther   = "Other"
)

// Groups lists the length groups in display order.
func Groups() []string {
	return []string{GroupEnglish, GroupFrench, GroupGerman, GroupOther}
}

// HistogramBins is the number of log10 bins shared by all groups.
const HistogramBins = 40

// Histogram is a log10 length histogram with one series per group.
type Histogram struct {
	Scale string `json:"scale"`
	// Edges holds the bin boundaries in log10(characters); bin i is [Edges[i], Edges[i+1]).
	Edges  []float64        `json:"edges"`
	Series []HistogramGroup `json:"series"`
}

// HistogramGroup is the bin counts of one length group.
type HistogramGroup struct {
	Group  string    `json:"group"`
	Books  int       `json:"books"`
	Counts []float64 `json:"counts"`
}

// Snapshot is the immutable set of statistics served by the API.
type Snapshot struct {
	Languages []LanguageCount
	Lengths   Histogram
}
