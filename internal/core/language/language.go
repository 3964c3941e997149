// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/gutensearch/internal/platform/apperr"
)

// Language is a book language backed by a text search configuration.
type Language struct {
	// Name is the label stored with the books (e.g. "English").
	Name string `json:"name"`
	// Config is the regconfig name used by the text search functions (e.g. "english").
	Config string `json:"config"`
}

// Set is the immutable set of languages that can be searched.
//
// It is built once at startup and shared by reference; all methods are safe
// for concurrent use because nothing mutates it after [NewSet] returns.
type Set struct {
	byKey map[string]Language
	names []string
}

// NewSet builds a Set from the language labels found in the store.
// Blank and duplicate labels (after case folding) are ignored.
func NewSet(names []string) *Set {
	set := &Set{byKey: make(map[string]Language, len(names))}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		key := foldKey(name)
		if _, exists := set.byKey[key]; exists {
			continue
		}

		set.byKey[key] = Language{Name: name, Config: strings.ToLower(name)}
		set.names = append(set.names, name)
	}

	slices.Sort(set.names)
	return set
}

// Resolve maps a user supplied language name to its [Language].
// Matching is case-insensitive; unknown names fail with UNSUPPORTED_LANGUAGE.
func (set *Set) Resolve(name string) (Language, error) {
	if set != nil {
		if language, ok := set.byKey[foldKey(name)]; ok {
			return language, nil
		}
	}
	return Language{}, apperr.UnsupportedLanguage(strings.TrimSpace(name))
}

// Contains reports whether name resolves to a supported language.
func (set *Set) Contains(name string) bool {
	_, err := set.Resolve(name)
	return err == nil
}

// Names returns the supported labels in ascending order.
func (set *Set) Names() []string {
	if set == nil {
		return []string{}
	}
	return slices.Clone(set.names)
}

// Len returns the number of supported languages.
func (set *Set) Len() int {
	if set == nil {
		return 0
	}
	return len(set.names)
}

// foldKey normalizes a name for lookups. A Caser is stateful, so one is built per call.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Catalog is the startup snapshot of the language enumeration.
type Catalog struct {
	Supported   *Set
	Unsupported []string
}
