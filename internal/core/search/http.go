// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gutensearch/internal/platform/respond"
	"github.com/taibuivan/gutensearch/internal/platform/validate"
	"github.com/taibuivan/gutensearch/pkg/pagination"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// resultMeta echoes the selection next to the window metadata.
type resultMeta struct {
	Mode     Mode   `json:"mode"`
	Language string `json:"language"`
	Terms    string `json:"terms"`
	Cached   bool   `json:"cached"`
	pagination.Meta
}

type resultEnvelope struct {
	Data []ResultRow `json:"data"`
	Meta resultMeta  `json:"meta"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
	router.Get("/discover", handler.discover)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	format, err := parseFormat(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	window, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()
	result, err := handler.service.Search(request.Context(), query.Get("language"), query.Get("q"), window)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.write(writer, request, format, result, pagination.NewMeta(result.Request.Window, len(result.Rows)))
}

func (handler *Handler) discover(writer http.ResponseWriter, request *http.Request) {
	format, err := parseFormat(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()
	result, err := handler.service.Discover(request.Context(), query.Get("language"), query.Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// A sample has no next page.
	meta := pagination.Meta{
		Limit:  result.Request.Window.Limit,
		Offset: result.Request.Window.Offset,
		Count:  len(result.Rows),
	}
	handler.write(writer, request, format, result, meta)
}

func (handler *Handler) write(writer http.ResponseWriter, request *http.Request, format string, result *Result, meta pagination.Meta) {
	if format == formatCSV {
		respond.CSV(writer, request, ExportFilename(result.Request), func(w io.Writer) error {
			return WriteCSV(w, result.Request.Mode, result.Rows)
		})
		return
	}

	respond.JSON(writer, http.StatusOK, resultEnvelope{
		Data: result.Rows,
		Meta: resultMeta{
			Mode:     result.Request.Mode,
			Language: result.Request.Language.Name,
			Terms:    result.Request.Terms,
			Cached:   result.Cached,
			Meta:     meta,
		},
	})
}

func parseFormat(request *http.Request) (string, error) {
	format := request.URL.Query().Get("format")
	if format == "" {
		return formatJSON, nil
	}

	v := &validate.Validator{}
	v.OneOf("format", format, formatJSON, formatCSV)
	return format, v.Err()
}
