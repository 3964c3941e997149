// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for row-window endpoints.
//
// # Overview
//
// Search results are addressed the way the dashboard addressed them: "show this
// many rows" (limit) "starting with row" (offset, 1-based). This package parses
// those query parameters and builds the metadata block of the response.
// Range checking is left to the service layer.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/taibuivan/gutensearch/internal/platform/apperr"
	"github.com/taibuivan/gutensearch/internal/platform/constants"
)

// Window holds the parsed limit and 1-based offset from a request's query string.
type Window struct {
	Limit  int
	Offset int
}

// SQLOffset returns the 0-based SQL OFFSET value derived from the 1-based [Window.Offset].
func (w Window) SQLOffset() int {
	if w.Offset <= 1 {
		return 0
	}
	return w.Offset - 1
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	// NextOffset is set when the page came back full, i.e. more rows may follow.
	NextOffset *int `json:"next_offset,omitempty"`
}

// NewMeta constructs pagination metadata for a window that returned count rows.
func NewMeta(w Window, count int) Meta {
	meta := Meta{Limit: w.Limit, Offset: w.Offset, Count: count}
	if w.Limit > 0 && count >= w.Limit {
		next := w.Offset + w.Limit
		meta.NextOffset = &next
	}
	return meta
}

// FromRequest parses "limit" and "offset" query parameters from an HTTP request.
//
// Missing values fall back to [constants.DefaultLimit] and [constants.DefaultOffset].
// Non-numeric values are rejected with an INVALID_RANGE error rather than clamped,
// so the caller never silently receives a different window than requested.
func FromRequest(r *http.Request) (Window, error) {
	var fields []apperr.FieldError

	limit, ok := parseIntParam(r, "limit", constants.DefaultLimit)
	if !ok {
		fields = append(fields, apperr.FieldError{Field: "limit", Message: "Must be a whole number"})
	}

	offset, ok := parseIntParam(r, "offset", constants.DefaultOffset)
	if !ok {
		fields = append(fields, apperr.FieldError{Field: "offset", Message: "Must be a whole number"})
	}

	if len(fields) > 0 {
		return Window{}, apperr.InvalidRange(fields...)
	}

	return Window{Limit: limit, Offset: offset}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return n, true
}
