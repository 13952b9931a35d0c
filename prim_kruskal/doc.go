// SPDX-License-Identifier: MIT

// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Kruskal's and Prim's algorithms.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all vertices in V with the minimum possible sum of weights.
//   - Network design, clustering (cut the heaviest MST edges), and approximation
//     algorithms all start from an MST.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: sort all edges by weight, then Union the endpoints of each edge in a
//     dsu.Keyed forest. Union returning false means the endpoints are already
//     connected and the edge would close a cycle, so it is skipped.
//
//   - Complexity: O(E log E + α(V)·E), Memory O(V + E).
//
//   - Determinism: graph.Edges() returns edges in creation order and the sort is
//     stable, so equal weights keep creation order.
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root, always taking the lightest edge that
//     reaches a new vertex (container/heap).
//
//   - Complexity: O(E log E), Memory O(V + E).
//
//   - Compute(g, opts...) dispatches on MSTOptions.Method.
//
// Both algorithms return the same total weight on any connected graph; the
// tests use Prim as an independent check of the forest-backed Kruskal.
//
// Error Conditions
//
//	- ErrInvalidGraph       graph is nil, directed, or unweighted.
//	- ErrEmptyRoot          Prim with root == "".
//	- core.ErrVertexNotFound Prim with a root that is not in the graph.
//	- ErrDisconnected       |V| == 0, or the graph does not span all vertices.
//	- ErrUnknownMethod      Compute with an unsupported Method.
package prim_kruskal
