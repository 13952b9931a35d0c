// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of cells as a graph, enabling
// island labelling and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Labels connected components (“islands”) of cells with value ≥ LandThreshold
//     by unioning neighboring land cells in a dsu.Forest.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//   - Converts to a *core.Graph for the graph-level packages.
//
// Complexity:
//
//   - ConnectedComponents, CountIslands: O(W×H×α(W×H)), Memory: O(W×H).
//   - ExpandIsland:                      O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ToCoreGraph:                       O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.MatchValues: only equal-valued neighbors share an island.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
