// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order.
//   - Neighbors() returns incident edges in insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of generated edge IDs.
const edgeIDPrefix = "e"

// AddEdge creates a new edge between from and to, creating missing vertices.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure both vertices exist.
//  3. Under muEdgeAdj, enforce the multi-edge policy.
//  4. Assign the next sequence number and ID ("e1", "e2", ...).
//  5. Link adjacency: from → edge, and to → edge for undirected non-loops.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized, plus O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.nextSeq++
	e := &Edge{
		ID:       edgeIDPrefix + strconv.FormatUint(g.nextSeq, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextSeq,
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs the
// orientation is ignored.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Neighbors returns the edges usable from id: outgoing edges in a directed
// graph, all incident edges in an undirected one. Use Edge.Other(id) to get
// the neighbor. The returned slice is a copy.
//
// Errors:
//   - ErrVertexNotFound if id is not in the graph.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return append([]*Edge(nil), g.adjacency[id]...), nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// hasEdgeLocked expects muEdgeAdj to be held.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}
