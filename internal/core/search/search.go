// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search implements full text search over the book paragraphs.

A search runs in one of two modes:

  - Precise: phrase match (word order preserved), ranked, paginated.
  - Discovery: loose match on any word order, a random sample of at most 30 books.

Requests are validated into a [Request] before any SQL is built. The [Builder]
renders constant SQL text with bound parameters, the [Repository] executes it,
and [Shape] turns the raw rows into [ResultRow] values for JSON, markdown and CSV.
*/
package search

import (
	"fmt"
	"strings"

	"github.com/taibuivan/gutensearch/internal/core/language"
	"github.com/taibuivan/gutensearch/internal/platform/apperr"
	"github.com/taibuivan/gutensearch/internal/platform/constants"
	"github.com/taibuivan/gutensearch/internal/platform/validate"
	"github.com/taibuivan/gutensearch/pkg/pagination"
)

// Mode selects the matching and ordering strategy.
type Mode string

const (
	ModePrecise   Mode = "precise"
	ModeDiscovery Mode = "discovery"
)

// LanguageResolver validates a language name against the supported set.
type LanguageResolver interface {
	Resolve(name string) (language.Language, error)
}

// Request is a validated search. Build it with [NewPreciseRequest] or [NewDiscoveryRequest].
type Request struct {
	Language language.Language
	// Terms is the trimmed free text, sent to the store only as a bound parameter.
	Terms string
	Mode  Mode
	// Window is the requested page. Discovery requests always carry the fixed sample window.
	Window pagination.Window
}

// NewPreciseRequest validates a ranked phrase search.
//
// Checks run in order: language, terms, then the row window; the first failing
// check decides the error.
func NewPreciseRequest(resolver LanguageResolver, languageName, terms string, window pagination.Window) (Request, error) {
	lang, trimmed, err := validateInput(resolver, languageName, terms)
	if err != nil {
		return Request{}, err
	}

	v := &validate.Validator{}
	v.Range("limit", window.Limit, 1, constants.MaxRange).
		Range("offset", window.Offset, 1, constants.MaxRange)
	if v.HasErrors() {
		return Request{}, apperr.InvalidRange(v.Fields()...)
	}

	return Request{Language: lang, Terms: trimmed, Mode: ModePrecise, Window: window}, nil
}

// NewDiscoveryRequest validates a random sample search.
func NewDiscoveryRequest(resolver LanguageResolver, languageName, terms string) (Request, error) {
	lang, trimmed, err := validateInput(resolver, languageName, terms)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Language: lang,
		Terms:    trimmed,
		Mode:     ModeDiscovery,
		Window:   pagination.Window{Limit: constants.DiscoverySampleSize, Offset: constants.DefaultOffset},
	}, nil
}

func validateInput(resolver LanguageResolver, languageName, terms string) (language.Language, string, error) {
	lang, err := resolver.Resolve(languageName)
	if err != nil {
		return language.Language{}, "", err
	}

	trimmed := strings.TrimSpace(terms)
	if trimmed == "" {
		return language.Language{}, "", apperr.EmptyQuery()
	}

	return lang, trimmed, nil
}

// Fingerprint identifies requests that must produce identical precise results.
func (r Request) Fingerprint() string {
	return fmt.Sprintf("%s|%s|%d|%d|%s", r.Mode, r.Language.Config, r.Window.Limit, r.Window.Offset, r.Terms)
}

// RawRow is one grouped book as returned by the store.
type RawRow struct {
	BookID int64
	Author *string
	Title  string
	// Snippets holds the distinct highlighted fragments joined by the excerpt separator.
	Snippets string
	// Key is the average rank (precise) or the random draw (discovery).
	Key float64
}

// ResultRow is a shaped search hit ready for display or export.
type ResultRow struct {
	BookID  int64  `json:"book_id"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Excerpt string `json:"relevant_paragraphs"`
	// Score is 100 times the average rank with one decimal. Empty in discovery mode.
	Score string `json:"score,omitempty"`
	// Rand is the discovery sort key. It is exported to CSV only.
	Rand float64 `json:"-"`
}

// Result is the outcome of one search together with the request that produced it.
type Result struct {
	Request Request
	Rows    []ResultRow
	// Cached is true when the rows came from the result cache.
	Cached bool
}
