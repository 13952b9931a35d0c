// SPDX-License-Identifier: MIT

// Package core provides the small, thread-safe in-memory Graph consumed by
// the connectivity, prim_kruskal and gridgraph packages.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Monotonic edge IDs ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed edges are listed only under their source in Neighbors.
//	    Undirected edges are listed under both endpoints.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows several edges between the same endpoints;
//	    otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                                      // O(1)
//	HasVertex(id string) bool                                       // O(1)
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1) amortized
//	HasEdge(from, to string) bool                                   // O(deg)
//	Neighbors(id string) ([]*Edge, error)                           // O(deg), insertion order
//	Vertices() []string                                             // O(V log V), sorted
//	Edges() []*Edge                                                 // O(E log E), by creation order
//	VertexCount(), EdgeCount()                                      // O(1)
//
// Determinism:
//
//	Vertices() is sorted lexicographically and Edges() follows edge creation
//	order, so algorithms that iterate them produce repeatable output.
package core
