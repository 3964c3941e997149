// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/taibuivan/gutensearch/internal/platform/apperr"
)

// Graph is the immutable author mention graph.
type Graph struct {
	graph  *simple.UndirectedGraph
	ids    map[string]int64
	names  []string
	folded []string
	sorted []int
}

// NewGraph builds the graph from an edge list. Blank names and self mentions
// are skipped; repeated pairs collapse into one edge.
func NewGraph(edges []Edge) *Graph {
	g := &Graph{
		graph: simple.NewUndirectedGraph(),
		ids:   make(map[string]int64),
	}

	for _, edge := range edges {
		a := strings.TrimSpace(edge.MentionedAuthor)
		b := strings.TrimSpace(edge.MentionedBy)
		if a == "" || b == "" {
			continue
		}

		u, v := g.node(a), g.node(b)
		if u == v {
			continue
		}
		g.graph.SetEdge(g.graph.NewEdge(simple.Node(u), simple.Node(v)))
	}

	g.sorted = make([]int, len(g.names))
	for i := range g.sorted {
		g.sorted[i] = i
	}
	slices.SortFunc(g.sorted, func(x, y int) int {
		return strings.Compare(g.names[x], g.names[y])
	})

	return g
}

// node returns the id of name, adding it on first sight.
func (g *Graph) node(name string) int64 {
	if id, ok := g.ids[name]; ok {
		return id
	}

	id := int64(len(g.names))
	g.ids[name] = id
	g.names = append(g.names, name)
	g.folded = append(g.folded, cases.Fold().String(name))
	g.graph.AddNode(simple.Node(id))
	return id
}

// ShortestPath finds a shortest mention chain between two authors.
// Names must match exactly, including case.
func (g *Graph) ShortestPath(from, to string) (Path, error) {
	fromID, ok := g.ids[from]
	if !ok {
		return Path{}, apperr.AuthorNotFound(from)
	}
	toID, ok := g.ids[to]
	if !ok {
		return Path{}, apperr.AuthorNotFound(to)
	}

	if fromID == toID {
		return Path{From: from, To: to, Authors: []string{from}}, nil
	}

	shortest := path.DijkstraFrom(g.graph.Node(fromID), g.graph)
	nodes, _ := shortest.To(toID)
	if len(nodes) == 0 {
		return Path{}, apperr.NoPath(from, to)
	}

	authors := make([]string, len(nodes))
	for i, node := range nodes {
		authors[i] = g.names[node.ID()]
	}

	return Path{From: from, To: to, Authors: authors, Hops: len(authors) - 1}, nil
}

// Authors lists author names in ascending order, optionally filtered by a
// case-insensitive prefix. limit <= 0 means no limit.
func (g *Graph) Authors(prefix string, limit int) []string {
	foldedPrefix := cases.Fold().String(strings.TrimSpace(prefix))

	result := []string{}
	for _, index := range g.sorted {
		if limit > 0 && len(result) == limit {
			break
		}
		if strings.HasPrefix(g.folded[index], foldedPrefix) {
			result = append(result, g.names[index])
		}
	}
	return result
}

// Contains reports whether name is a node of the graph.
func (g *Graph) Contains(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// Size returns the node and edge counts.
func (g *Graph) Size() (nodes, edges int) {
	return g.graph.Nodes().Len(), g.graph.Edges().Len()
}
