// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/taibuivan/gutensearch/pkg/slug"
)

// CSVHeader returns the export columns for a mode.
func CSVHeader(mode Mode) []string {
	header := []string{"author", "title", "relevant_paragraphs"}
	if mode == ModeDiscovery {
		header = append(header, "rand")
	}
	return header
}

// WriteCSV writes rows with a header line. Discovery exports carry the random sort key.
func WriteCSV(w io.Writer, mode Mode, rows []ResultRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader(mode)); err != nil {
		return fmt.Errorf("search: write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.Author, row.Title, row.Excerpt}
		if mode == ModeDiscovery {
			record = append(record, strconv.FormatFloat(row.Rand, 'f', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("search: write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("search: flush csv: %w", err)
	}
	return nil
}

// ExportFilename names a CSV download after the mode, language and terms.
func ExportFilename(req Request) string {
	name := slug.From(fmt.Sprintf("%s %s %s", req.Mode, req.Language.Name, req.Terms))
	if name == "" {
		name = string(req.Mode)
	}
	return name + ".csv"
}
