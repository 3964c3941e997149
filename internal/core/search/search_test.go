// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/core/search"
	"github.com/taibuivan/gutensearch/internal/platform/apperr"
	"github.com/taibuivan/gutensearch/pkg/pagination"
)

/*
TestNewPreciseRequest covers each validation failure and its precedence.
*/
func TestNewPreciseRequest(t *testing.T) {
	tests := []struct {
		name     string
		language string
		terms    string
		limit    int
		offset   int
		wantCode string
	}{
		{"valid", "English", "the best of times", 5, 1, ""},
		{"upper bound", "English", "sea", 60_000_000, 60_000_000, ""},
		{"unsupported language", "Klingon", "qapla", 10, 1, apperr.CodeUnsupportedLanguage},
		{"blank terms", "English", "   ", 10, 1, apperr.CodeEmptyQuery},
		{"language checked before terms", "Klingon", "", 10, 1, apperr.CodeUnsupportedLanguage},
		{"terms checked before range", "English", "", 0, 0, apperr.CodeEmptyQuery},
		{"zero limit", "English", "sea", 0, 1, apperr.CodeInvalidRange},
		{"zero offset", "English", "sea", 10, 0, apperr.CodeInvalidRange},
		{"negative offset", "English", "sea", 10, -3, apperr.CodeInvalidRange},
		{"limit too large", "English", "sea", 60_000_001, 1, apperr.CodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := search.NewPreciseRequest(testLanguages, tt.language, tt.terms,
				pagination.Window{Limit: tt.limit, Offset: tt.offset})

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, search.ModePrecise, req.Mode)
				return
			}
			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

/*
TestNewPreciseRequest_TrimsTerms stores the trimmed terms and resolved language.
*/
func TestNewPreciseRequest_TrimsTerms(t *testing.T) {
	req, err := search.NewPreciseRequest(testLanguages, "english", "  call me Ishmael \n", pagination.Window{Limit: 1, Offset: 1})
	require.NoError(t, err)

	assert.Equal(t, "call me Ishmael", req.Terms)
	assert.Equal(t, "English", req.Language.Name)
	assert.Equal(t, "english", req.Language.Config)
}

/*
TestNewDiscoveryRequest uses the fixed sample window.
*/
func TestNewDiscoveryRequest(t *testing.T) {
	req, err := search.NewDiscoveryRequest(testLanguages, "French", "mer")
	require.NoError(t, err)
	assert.Equal(t, search.ModeDiscovery, req.Mode)
	assert.Equal(t, 30, req.Window.Limit)

	_, err = search.NewDiscoveryRequest(testLanguages, "Klingon", "mer")
	assert.True(t, apperr.HasCode(err, apperr.CodeUnsupportedLanguage))

	_, err = search.NewDiscoveryRequest(testLanguages, "French", "\t")
	assert.True(t, apperr.HasCode(err, apperr.CodeEmptyQuery))
}

/*
TestRequest_Fingerprint distinguishes every field that changes the result.
*/
func TestRequest_Fingerprint(t *testing.T) {
	base := preciseRequest(t, "English", "sea", 10, 1)

	assert.Equal(t, base.Fingerprint(), preciseRequest(t, "english", " sea ", 10, 1).Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), preciseRequest(t, "English", "sea", 10, 11).Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), preciseRequest(t, "English", "sea", 20, 1).Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), preciseRequest(t, "French", "sea", 10, 1).Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), preciseRequest(t, "English", "Sea", 10, 1).Fingerprint())
}
