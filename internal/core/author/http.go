// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gutensearch/internal/platform/apperr"
	"github.com/taibuivan/gutensearch/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAuthors)
	router.Get("/path", handler.shortestPath)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	limit := DefaultListLimit
	if raw := query.Get(FieldLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("Invalid author listing parameters",
				apperr.FieldError{Field: FieldLimit, Message: "Must be a whole number"}))
			return
		}
		limit = parsed
	}

	authors, err := handler.service.Authors(query.Get(FieldPrefix), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *Handler) shortestPath(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	result, err := handler.service.ShortestPath(query.Get(FieldFrom), query.Get(FieldTo))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
