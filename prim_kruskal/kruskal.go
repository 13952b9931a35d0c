// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/unionfind/core"
	"github.com/katalvlaran/unionfind/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// Components are tracked in a dsu.Keyed forest keyed by vertex ID.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, directed, or unweighted.
//   - ErrDisconnected  : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate the graph.
//  2. Retrieve sorted vertex IDs; |V| == 0 → ErrDisconnected, |V| == 1 → empty MST.
//  3. Collect all edges, skipping self-loops.
//  4. Stable-sort by ascending weight (ties keep creation order).
//  5. For each edge, Union its endpoints; a true result puts it in the MST.
//  6. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	forest, err := dsu.NewKeyed(vertices)
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: Kruskal: %w", err)
	}

	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
	)
	for _, e := range edges {
		merged, err := forest.Union(e.From, e.To)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: Kruskal: edge %s: %w", e.ID, err)
		}
		if !merged {
			// Endpoints already connected: the edge would close a cycle.
			continue
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
