// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gutensearch/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/languages", handler.booksPerLanguage)
	router.Get("/lengths", handler.bookLengths)
}

func (handler *Handler) booksPerLanguage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Snapshot().Languages)
}

func (handler *Handler) bookLengths(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Snapshot().Lengths)
}
