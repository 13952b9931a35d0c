// SPDX-License-Identifier: MIT

package dsu

import "fmt"

// New creates a Forest of n singleton sets {0}, {1}, ..., {n-1}.
// Every element starts as its own root with rank 0 and size 1; Count() == n.
//
// Errors:
//   - ErrInvalidSize if n < 0.
//
// Complexity: Time O(n), Memory O(n).
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the size N of the universe. It never changes after New.
// Complexity: O(1).
func (f *Forest) Len() int {
	return len(f.parent)
}

// Count returns the current number of disjoint sets.
// It starts at N and drops by one on every Union that returns true.
// Complexity: O(1).
func (f *Forest) Count() int {
	return f.count
}

// Find returns the root of the set containing x.
//
// Steps:
//  1. Validate x.
//  2. Walk parent links until parent[r] == r.
//  3. Walk the same path again, pointing every visited node straight at r.
//
// A second Find(x) without an intervening Union returns the same root and
// changes nothing.
//
// Errors:
//   - ErrIndexOutOfRange if x ∉ [0, N).
//
// Complexity: amortized O(α(N)).
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.find(x), nil
}

// Union merges the sets containing x and y.
//
// It returns false when x and y already share a root: the forest is left
// untouched and the caller learns the pair is redundant (for an edge list,
// the edge closes a cycle). Otherwise the two roots are linked by rank and
// Union returns true.
//
// Linking rule (ranks are read at the roots):
//   - rank[rootX] < rank[rootY]: rootX goes under rootY.
//   - rank[rootX] > rank[rootY]: rootY goes under rootX.
//   - equal: rootY goes under rootX and rank[rootX]++.
//
// Errors:
//   - ErrIndexOutOfRange if x or y ∉ [0, N). Both indices are checked
//     before any path compression happens.
//
// Complexity: amortized O(α(N)).
func (f *Forest) Union(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	return f.union(x, y), nil
}

// Connected reports whether x and y belong to the same set.
// Path compression is applied to both paths as a side effect.
//
// Errors:
//   - ErrIndexOutOfRange if x or y ∉ [0, N).
//
// Complexity: amortized O(α(N)).
func (f *Forest) Connected(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	return f.find(x) == f.find(y), nil
}

// SizeOf returns the number of elements in the set containing x.
//
// Errors:
//   - ErrIndexOutOfRange if x ∉ [0, N).
//
// Complexity: amortized O(α(N)).
func (f *Forest) SizeOf(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.size[f.find(x)], nil
}

// check validates an element index against the universe.
func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(f.parent))
	}

	return nil
}

// find assumes x is valid.
func (f *Forest) find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for x != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root
}

// union assumes x and y are valid.
func (f *Forest) union(x, y int) bool {
	rootX, rootY := f.find(x), f.find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case f.rank[rootX] < f.rank[rootY]:
		f.parent[rootX] = rootY
		f.size[rootY] += f.size[rootX]
	case f.rank[rootX] > f.rank[rootY]:
		f.parent[rootY] = rootX
		f.size[rootX] += f.size[rootY]
	default:
		f.parent[rootY] = rootX
		f.size[rootX] += f.size[rootY]
		f.rank[rootX]++
	}
	f.count--

	return true
}
