// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gutensearch/internal/platform/respond"
)

// listResponse is the payload of GET /languages.
type listResponse struct {
	Supported   []string `json:"supported"`
	Unsupported []string `json:"unsupported"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	catalog := handler.service.Catalog()
	respond.OK(writer, listResponse{
		Supported:   catalog.Supported.Names(),
		Unsupported: catalog.Unsupported,
	})
}
