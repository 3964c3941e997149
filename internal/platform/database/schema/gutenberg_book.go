package schema

// GutenbergBookTable represents the 'gutenberg.all_data' table
type GutenbergBookTable struct {
	Table    string
	ID       string
	Author   string
	Title    string
	Language string
	Length   string
}

// GutenbergBook is the schema definition for gutenberg.all_data
var GutenbergBook = GutenbergBookTable{
	Table:    "gutenberg.all_data",
	ID:       "num",
	Author:   "author",
	Title:    "title",
	Language: "language",
	Length:   "length",
}

func (t GutenbergBookTable) Columns() []string {
	return []string{t.ID, t.Author, t.Title, t.Language, t.Length}
}
