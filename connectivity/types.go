// SPDX-License-Identifier: MIT

package connectivity

import "errors"

// Sentinel errors for connectivity operations.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrDirectedGraph is returned by HasCycle for directed graphs:
	// union-find cannot tell a directed cycle from two converging paths.
	ErrDirectedGraph = errors.New("connectivity: graph is directed")

	// ErrNotSquare is returned by CountProvinces for a matrix whose rows do
	// not all have length equal to the number of rows.
	ErrNotSquare = errors.New("connectivity: matrix is not square")
)

// Edge is an undirected pair of element indices.
type Edge [2]int
