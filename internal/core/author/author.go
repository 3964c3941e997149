// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package author answers "how are these two authors connected?" questions.

The mention graph links an author to every author they mention in their books.
It is loaded once at startup from gutenberg.mentioned_authors and never changes
afterwards, so lookups need no locking.
*/
package author

// Edge is one undirected mention between two authors.
type Edge struct {
	MentionedAuthor  string `json:"mentioned_author"`
	MentionedBy      string `json:"mentioned_by"`
	BooksMentionedIn int    `json:"books_mentioned_in"`
}

// Path is a shortest chain of authors, source and destination included.
type Path struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Authors []string `json:"authors"`
	// Hops is the number of mention edges walked.
	Hops int `json:"hops"`
}

// Query parameter names
const (
	FieldFrom   = "from"
	FieldTo     = "to"
	FieldPrefix = "q"
	FieldLimit  = "limit"
)

// Listing bounds
const (
	DefaultListLimit = 50
	MaxListLimit     = 1000
)
