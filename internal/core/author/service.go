// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/taibuivan/gutensearch/internal/platform/apperr"
	"github.com/taibuivan/gutensearch/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	graph  atomic.Pointer[Graph]
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load builds the mention graph from the store and publishes it.
func (service *Service) Load(ctx context.Context) (*Graph, error) {
	edges, err := service.repo.ListEdges(ctx)
	if err != nil {
		return nil, err
	}

	graph := NewGraph(edges)
	service.graph.Store(graph)

	nodes, links := graph.Size()
	service.logger.Info("author_graph_loaded",
		slog.Int("edges_read", len(edges)),
		slog.Int("authors", nodes),
		slog.Int("mentions", links),
	)

	return graph, nil
}

// Graph returns the loaded graph, or an empty one before [Service.Load].
func (service *Service) Graph() *Graph {
	if graph := service.graph.Load(); graph != nil {
		return graph
	}
	return NewGraph(nil)
}

// ShortestPath validates both names and finds a shortest mention chain.
func (service *Service) ShortestPath(from, to string) (Path, error) {
	v := &validate.Validator{}
	v.Required(FieldFrom, from).Required(FieldTo, to)
	if err := v.Err(); err != nil {
		return Path{}, err
	}

	return service.Graph().ShortestPath(from, to)
}

// Authors lists graph nodes matching a name prefix.
func (service *Service) Authors(prefix string, limit int) ([]string, error) {
	v := &validate.Validator{}
	v.MaxLen(FieldPrefix, prefix, 200).Range(FieldLimit, limit, 1, MaxListLimit)
	if v.HasErrors() {
		return nil, apperr.ValidationError("Invalid author listing parameters", v.Fields()...)
	}

	return service.Graph().Authors(prefix, limit), nil
}
