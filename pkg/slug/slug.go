// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII file name slugs from arbitrary Unicode strings.
//
// # Usage
//
// Search exports are downloaded as "<mode>-<language>-<terms>.csv". Terms are
// free text in any of the indexed languages, so accents are folded away and
// everything outside [a-z0-9] collapses into single hyphens.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLength bounds slugs so long queries still give usable file names.
const maxLength = 80

var (
	// nonAlphanumeric matches any run of characters outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// From converts an arbitrary Unicode string into an ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and drops combining marks (é → e).
// 2. Converts to lowercase.
// 3. Replaces every run of other characters with one hyphen.
// 4. Trims hyphens and cuts the result to maxLength.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > maxLength {
		result = strings.TrimRight(result[:maxLength], "-")
	}
	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
