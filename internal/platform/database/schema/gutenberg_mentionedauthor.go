package schema

// GutenbergMentionedAuthorTable represents the 'gutenberg.mentioned_authors' table
type GutenbergMentionedAuthorTable struct {
	Table            string
	MentionedAuthor  string
	MentionedBy      string
	BooksMentionedIn string
}

// GutenbergMentionedAuthor is the schema definition for gutenberg.mentioned_authors
var GutenbergMentionedAuthor = GutenbergMentionedAuthorTable{
	Table:            "gutenberg.mentioned_authors",
	MentionedAuthor:  "mentioned_author",
	MentionedBy:      "mentioned_by",
	BooksMentionedIn: "books_mentioned_in",
}

func (t GutenbergMentionedAuthorTable) Columns() []string {
	return []string{t.MentionedAuthor, t.MentionedBy, t.BooksMentionedIn}
}
