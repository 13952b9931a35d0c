// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"github.com/katalvlaran/unionfind/dsu"
)

// RedundantEdge scans edges over the universe {0..n-1} in order and returns
// the first one whose endpoints are already connected, i.e. the edge that
// closes a cycle. found is false when the edge list is acyclic. Edges after
// the redundant one are not inspected.
//
// Errors:
//   - dsu.ErrInvalidSize if n < 0.
//   - dsu.ErrIndexOutOfRange if an endpoint is outside [0, n); the message
//     names the offending edge position.
//
// Complexity: Time O(n + E·α(n)), Memory O(n).
func RedundantEdge(n int, edges []Edge) (edge Edge, found bool, err error) {
	f, err := dsu.New(n)
	if err != nil {
		return Edge{}, false, fmt.Errorf("connectivity: RedundantEdge: %w", err)
	}

	for i, e := range edges {
		merged, err := f.Union(e[0], e[1])
		if err != nil {
			return Edge{}, false, fmt.Errorf("connectivity: RedundantEdge: edge #%d %v: %w", i, e, err)
		}
		if !merged {
			return e, true, nil
		}
	}

	return Edge{}, false, nil
}

// IsValidTree reports whether edges connect all n vertices without a cycle.
//
// A tree on n vertices has exactly n-1 edges and no redundant edge. Every
// endpoint is validated before the edge count is compared. n == 0 is not a
// tree; a single vertex with no edges is.
//
// Errors:
//   - dsu.ErrInvalidSize if n < 0.
//   - dsu.ErrIndexOutOfRange if any endpoint is outside [0, n).
func IsValidTree(n int, edges []Edge) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("connectivity: IsValidTree: %w: %d", dsu.ErrInvalidSize, n)
	}
	for i, e := range edges {
		for _, v := range e {
			if v < 0 || v >= n {
				return false, fmt.Errorf("connectivity: IsValidTree: edge #%d: %w: %d not in [0,%d)",
					i, dsu.ErrIndexOutOfRange, v, n)
			}
		}
	}
	if n == 0 || len(edges) != n-1 {
		return false, nil
	}

	_, found, err := RedundantEdge(n, edges)
	if err != nil {
		return false, err
	}

	// n-1 edges with no cycle always span all n vertices.
	return !found, nil
}

// CountProvinces returns the number of connected groups described by an
// n×n adjacency matrix, where isConnected[i][j] == 1 means i and j are
// directly connected. Only the upper triangle (j > i) is read; the diagonal
// is ignored. An empty matrix has zero provinces.
//
// Errors:
//   - ErrNotSquare if any row length differs from len(isConnected).
//
// Complexity: Time O(n²·α(n)), Memory O(n).
func CountProvinces(isConnected [][]int) (int, error) {
	n := len(isConnected)
	for i, row := range isConnected {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}

	f, err := dsu.New(n)
	if err != nil {
		return 0, fmt.Errorf("connectivity: CountProvinces: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if isConnected[i][j] != 1 {
				continue
			}
			if _, err = f.Union(i, j); err != nil {
				return 0, fmt.Errorf("connectivity: CountProvinces: %w", err)
			}
		}
	}

	return f.Count(), nil
}
