// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/gutensearch/internal/platform/constants"
	"github.com/taibuivan/gutensearch/pkg/pointer"
	"github.com/taibuivan/gutensearch/pkg/slice"
)

const (
	excerptPrefix = "  ..."
	excerptSuffix = "...  "
)

// Shape converts store rows into result rows, keeping the store order.
// It never returns nil, so an empty match renders as an empty table.
func Shape(mode Mode, raws []RawRow) []ResultRow {
	if len(raws) == 0 {
		return []ResultRow{}
	}

	return slice.Map(raws, func(raw RawRow) ResultRow {
		row := ResultRow{
			BookID:  raw.BookID,
			Author:  pointer.Val(raw.Author),
			Title:   LinkTitle(raw.Title, raw.BookID),
			Excerpt: FormatExcerpt(raw.Snippets),
		}

		if mode == ModeDiscovery {
			row.Rand = raw.Key
		} else {
			row.Score = FormatScore(raw.Key)
		}
		return row
	})
}

// BookURL is the canonical Project Gutenberg address of a book.
func BookURL(bookID int64) string {
	return constants.BookURLPrefix + strconv.FormatInt(bookID, 10)
}

// LinkTitle renders a markdown link to the book. Already linked titles are returned unchanged.
func LinkTitle(title string, bookID int64) string {
	suffix := "](" + BookURL(bookID) + ")"
	if strings.HasPrefix(title, "[") && strings.HasSuffix(title, suffix) {
		return title
	}
	return "[" + title + suffix
}

// FormatScore renders an average rank as a percentage with one decimal.
func FormatScore(rank float64) string {
	return fmt.Sprintf("%.1f", 100*rank)
}

// FormatExcerpt truncates the joined snippets and adds the ellipsis frame.
// Text that is already framed is only re-truncated.
func FormatExcerpt(snippets string) string {
	body := snippets
	if strings.HasPrefix(body, excerptPrefix) && strings.HasSuffix(body, excerptSuffix) &&
		len(body) >= len(excerptPrefix)+len(excerptSuffix) {
		body = body[len(excerptPrefix) : len(body)-len(excerptSuffix)]
	}
	return excerptPrefix + Truncate(body, constants.MaxExcerptLength) + excerptSuffix
}

// Truncate cuts s to at most max characters (runes).
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	count := 0
	for index := range s {
		if count == max {
			return s[:index]
		}
		count++
	}
	return s
}
