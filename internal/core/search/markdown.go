// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"fmt"
	"strings"
)

// Markdown renders a result the way the dashboard rendered its tables: a
// selection line followed by one section per book.
func Markdown(result *Result) string {
	var builder strings.Builder
	req := result.Request

	if req.Mode == ModePrecise {
		fmt.Fprintf(&builder, "Current selection: %q, %q starting with result no. %d for %d rows.\n\n",
			req.Language.Name, req.Terms, req.Window.Offset, req.Window.Limit)
	} else {
		fmt.Fprintf(&builder, "Current selection: %q, %q.\n\n", req.Language.Name, req.Terms)
	}

	if len(result.Rows) == 0 {
		builder.WriteString("_No matching books._\n")
		return builder.String()
	}

	for _, row := range result.Rows {
		author := row.Author
		if author == "" {
			author = "Unknown author"
		}

		fmt.Fprintf(&builder, "## %s\n\n", row.Title)
		fmt.Fprintf(&builder, "*%s*", author)
		if row.Score != "" {
			fmt.Fprintf(&builder, " · score %s", row.Score)
		}
		builder.WriteString("\n\n")

		builder.WriteString(strings.TrimSpace(row.Excerpt))
		builder.WriteString("\n\n---\n\n")
	}

	return builder.String()
}
