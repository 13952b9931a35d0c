// SPDX-License-Identifier: MIT

// Package unionfind is a disjoint-set (union-find) toolkit: a forest with
// union by rank and full path compression, and the connectivity algorithms
// built on top of it.
//
// 🚀 What is inside?
//
//	dsu/            Forest over 0..N-1, Keyed forest over any comparable key, Synced wrapper
//	core/           small thread-safe graph (string vertex IDs, int64 weights)
//	connectivity/   components, cycle check, redundant edge, valid tree, provinces
//	prim_kruskal/   minimum spanning trees (Kruskal on the forest, Prim as cross-check)
//	gridgraph/      grid islands labelled with the forest, island bridging, grid → core.Graph
//	cmd/unionfind/  CLI running all of the above over YAML problem files
//
// ✨ Forest guarantees
//
//   - Find is iterative and compresses the whole visited path.
//   - Union attaches the lower-rank root under the higher one; ties keep the first root.
//   - Union reports whether a merge happened; Count drops by exactly one per merge.
//   - Every operation validates its indices before touching the structure.
//
// Quick ASCII example:
//
//	union(1,2) union(2,5) union(3,8)
//
//	{0} {1 2 5} {3 8} {4} {6} {7} {9}   → Count() == 7
//
//	go get github.com/katalvlaran/unionfind
package unionfind
