package schema

// GutenbergParagraphTable represents the 'gutenberg.paragraphs' table
type GutenbergParagraphTable struct {
	Table        string
	BookID       string
	Paragraph    string
	Language     string
	SearchVector string
}

// GutenbergParagraph is the schema definition for gutenberg.paragraphs
var GutenbergParagraph = GutenbergParagraphTable{
	Table:        "gutenberg.paragraphs",
	BookID:       "num",
	Paragraph:    "paragraph",
	Language:     "language",
	SearchVector: "textsearchable_index_col",
}

func (t GutenbergParagraphTable) Columns() []string {
	return []string{t.BookID, t.Paragraph, t.Language, t.SearchVector}
}
