// SPDX-License-Identifier: MIT

package dsu

import "errors"

// Sentinel errors for dsu operations.
var (
	// ErrInvalidSize indicates a negative universe size.
	ErrInvalidSize = errors.New("dsu: invalid size")

	// ErrIndexOutOfRange indicates an element index outside [0, N).
	ErrIndexOutOfRange = errors.New("dsu: index out of range")

	// ErrDuplicateKey indicates the same key was registered twice in a Keyed forest.
	ErrDuplicateKey = errors.New("dsu: duplicate key")

	// ErrUnknownKey indicates a key that was never registered in a Keyed forest.
	ErrUnknownKey = errors.New("dsu: unknown key")
)

// Forest is a disjoint-set forest over the fixed universe {0..N-1}.
//
// parent[i] == i marks a root. rank[i] and size[i] are only meaningful
// while i is a root: rank bounds the height of the tree under i, size is
// the number of elements in i's set. count is the number of distinct roots.
//
// The zero value is an empty forest (N = 0).
type Forest struct {
	parent []int
	rank   []int
	size   []int
	count  int
}
