// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/platform/apperr"
)

/*
TestTaxonomy_StatusCodes checks the HTTP mapping of every taxonomy constructor.
*/
func TestTaxonomy_StatusCodes(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"unsupported_language", apperr.UnsupportedLanguage("Klingon"), apperr.CodeUnsupportedLanguage, http.StatusBadRequest},
		{"empty_query", apperr.EmptyQuery(), apperr.CodeEmptyQuery, http.StatusBadRequest},
		{"invalid_range", apperr.InvalidRange(), apperr.CodeInvalidRange, http.StatusBadRequest},
		{"query_timeout", apperr.QueryTimeout(cause), apperr.CodeQueryTimeout, http.StatusGatewayTimeout},
		{"connection", apperr.Connection(cause), apperr.CodeConnection, http.StatusServiceUnavailable},
		{"author_not_found", apperr.AuthorNotFound("Nobody"), apperr.CodeAuthorNotFound, http.StatusNotFound},
		{"no_path", apperr.NoPath("A", "B"), apperr.CodeNoPath, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestAuthorNotFound_NamesAuthor verifies the message identifies the failing author.
*/
func TestAuthorNotFound_NamesAuthor(t *testing.T) {
	assert.Contains(t, apperr.AuthorNotFound("Nobody").Error(), `"Nobody"`)
}

/*
TestHasCode walks wrapped chains.
*/
func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", apperr.EmptyQuery())

	assert.True(t, apperr.HasCode(wrapped, apperr.CodeEmptyQuery))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeInvalidRange))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeEmptyQuery))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "q", ae.Details[0].Field)
}
