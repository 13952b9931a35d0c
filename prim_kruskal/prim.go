// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/unionfind/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed, or unweighted.
//   - ErrDisconnected       : if |V| == 0 or not every vertex is reachable from root.
//   - ErrEmptyRoot          : if root == "".
//   - core.ErrVertexNotFound: if root is not a vertex of graph.
//
// Returned edges are oriented away from the tree: From is the vertex already
// in the tree, To is the vertex the edge brings in.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: Prim: %w: %q", core.ErrVertexNotFound, root)
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64

	pq := &edgePQ{}
	push := func(from string) error {
		nbs, err := graph.Neighbors(from)
		if err != nil {
			return fmt.Errorf("prim_kruskal: Prim: %w", err)
		}
		for _, e := range nbs {
			if to := e.Other(from); !visited[to] {
				heap.Push(pq, candidate{edge: e, from: from, to: to})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		picked := *c.edge
		picked.From, picked.To = c.from, c.to
		mst = append(mst, picked)
		totalWeight += c.edge.Weight
		if err := push(c.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidate is an edge crossing from the tree (from) to an outside vertex (to).
type candidate struct {
	edge     *core.Edge
	from, to string
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// weight, then by target vertex ID.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].to < pq[j].to
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
