// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"github.com/katalvlaran/unionfind/core"
	"github.com/katalvlaran/unionfind/dsu"
)

// Components returns the connected components of g, ignoring edge direction
// (weak connectivity for directed graphs).
//
// Determinism:
//   - Vertex IDs inside a component are sorted.
//   - Components are ordered by their smallest vertex ID.
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: Time O(V log V + E·α(V)), Memory O(V).
func Components(g *core.Graph) ([][]string, error) {
	kf, err := unionAll(g)
	if err != nil {
		return nil, err
	}

	// Vertices() is sorted, so Groups() keeps members and groups sorted.
	return kf.Groups(), nil
}

// CountComponents returns the number of connected components of g.
// An empty graph has zero components.
//
// Errors:
//   - ErrGraphNil if g is nil.
func CountComponents(g *core.Graph) (int, error) {
	kf, err := unionAll(g)
	if err != nil {
		return 0, err
	}

	return kf.Count(), nil
}

// HasCycle reports whether the undirected graph g contains a cycle.
// A self-loop counts as a cycle, and so does a pair of parallel edges.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrDirectedGraph if g is directed.
//
// Complexity: Time O(V log V + E·α(V)), Memory O(V).
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, ErrDirectedGraph
	}

	kf, err := dsu.NewKeyed(g.Vertices())
	if err != nil {
		return false, fmt.Errorf("connectivity: HasCycle: %w", err)
	}
	for _, e := range g.Edges() {
		merged, err := kf.Union(e.From, e.To)
		if err != nil {
			return false, fmt.Errorf("connectivity: HasCycle: %w", err)
		}
		if !merged {
			return true, nil
		}
	}

	return false, nil
}

// unionAll builds a Keyed forest over g's vertices and unions every edge.
func unionAll(g *core.Graph) (*dsu.Keyed[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	kf, err := dsu.NewKeyed(g.Vertices())
	if err != nil {
		return nil, fmt.Errorf("connectivity: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err = kf.Union(e.From, e.To); err != nil {
			return nil, fmt.Errorf("connectivity: edge %s: %w", e.ID, err)
		}
	}

	return kf, nil
}
