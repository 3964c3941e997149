// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/core/language"
	"github.com/taibuivan/gutensearch/internal/platform/apperr"
	"github.com/taibuivan/gutensearch/internal/platform/logger"
)

type fakeRepository struct {
	supported   []string
	unsupported []string
	err         error
}

func (f *fakeRepository) SupportedLanguages(context.Context) ([]string, error) {
	return f.supported, f.err
}

func (f *fakeRepository) UnsupportedLanguages(context.Context) ([]string, error) {
	return f.unsupported, f.err
}

/*
TestSet_Resolve checks case-insensitive lookups and the rejection of unknown names.
*/
func TestSet_Resolve(t *testing.T) {
	set := language.NewSet([]string{"English", "French", "german", "  "})

	tests := []struct {
		name       string
		input      string
		wantConfig string
		wantErr    bool
	}{
		{"exact", "English", "english", false},
		{"lower", "french", "french", false},
		{"upper", "GERMAN", "german", false},
		{"padded", "  English ", "english", false},
		{"unknown", "Klingon", "", true},
		{"blank", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := set.Resolve(tt.input)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeUnsupportedLanguage))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantConfig, got.Config)
		})
	}
}

/*
TestSet_Names returns sorted labels without blanks or case duplicates.
*/
func TestSet_Names(t *testing.T) {
	set := language.NewSet([]string{"German", "English", "english", ""})

	assert.Equal(t, []string{"English", "German"}, set.Names())
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("ENGLISH"))
	assert.False(t, set.Contains("Latin"))
}

/*
TestService_Load publishes the catalog used for resolution.
*/
func TestService_Load(t *testing.T) {
	repo := &fakeRepository{supported: []string{"English"}, unsupported: []string{"Latin", "Esperanto"}}
	service := language.NewService(repo, logger.Discard())

	_, err := service.Resolve("English")
	assert.Error(t, err, "nothing resolves before loading")

	catalog, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Latin", "Esperanto"}, catalog.Unsupported)

	got, err := service.Resolve("english")
	require.NoError(t, err)
	assert.Equal(t, "English", got.Name)
}

/*
TestService_Load_Error keeps the store error.
*/
func TestService_Load_Error(t *testing.T) {
	storeErr := apperr.Connection(errors.New("refused"))
	service := language.NewService(&fakeRepository{err: storeErr}, logger.Discard())

	_, err := service.Load(context.Background())
	assert.True(t, apperr.HasCode(err, apperr.CodeConnection))
}

/*
TestHandler_ListLanguages renders both enumerations.
*/
func TestHandler_ListLanguages(t *testing.T) {
	service := language.NewService(&fakeRepository{supported: []string{"French", "English"}}, logger.Discard())
	_, err := service.Load(context.Background())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Route("/languages", language.NewHandler(service).RegisterRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/languages", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Supported   []string `json:"supported"`
			Unsupported []string `json:"unsupported"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"English", "French"}, body.Data.Supported)
	assert.Empty(t, body.Data.Unsupported)
	assert.NotNil(t, body.Data.Unsupported)
}
