// SPDX-License-Identifier: MIT

// Package connectivity answers connectivity questions with a disjoint-set
// forest: one Union per edge, then read the partition.
//
// What:
//
//   - Components / CountComponents: (weakly) connected components of a core.Graph.
//   - HasCycle: whether an undirected core.Graph contains a cycle.
//   - RedundantEdge: the first edge of an indexed edge list that closes a cycle.
//   - IsValidTree: whether n vertices and an edge list form a single tree.
//   - CountProvinces: number of groups in a symmetric adjacency matrix.
//
// Why union-find instead of DFS:
//
//   - Edges can be consumed in a single streaming pass, in any order.
//   - The answer for "does this edge close a cycle?" is available at the
//     moment the edge is seen, which is what RedundantEdge reports.
//
// Complexity:
//
//   - Components, HasCycle:        Time O(V + E·α(V)), Memory O(V)
//   - RedundantEdge, IsValidTree:  Time O(n + E·α(n)), Memory O(n)
//   - CountProvinces:              Time O(n²·α(n)),    Memory O(n)
//
// Errors:
//
//   - ErrGraphNil       nil *core.Graph
//   - ErrDirectedGraph  HasCycle on a directed graph
//   - ErrNotSquare      CountProvinces on a ragged or non-square matrix
//   - dsu.ErrInvalidSize, dsu.ErrIndexOutOfRange  propagated for indexed inputs
package connectivity
