// SPDX-License-Identifier: MIT

package dsu

import "fmt"

// Keyed is a Forest addressed by comparable keys instead of indices.
// The key set is fixed by NewKeyed; key i of the input is element i of the
// underlying Forest.
type Keyed[K comparable] struct {
	forest *Forest
	index  map[K]int
	keys   []K
}

// NewKeyed builds a Keyed forest with one singleton set per key.
//
// Errors:
//   - ErrDuplicateKey if a key appears more than once.
//
// Complexity: Time O(n), Memory O(n).
func NewKeyed[K comparable](keys []K) (*Keyed[K], error) {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		index[k] = i
	}

	forest, err := New(len(keys))
	if err != nil {
		return nil, err
	}

	return &Keyed[K]{
		forest: forest,
		index:  index,
		keys:   append([]K(nil), keys...),
	}, nil
}

// Has reports whether k was registered.
func (kf *Keyed[K]) Has(k K) bool {
	_, ok := kf.index[k]

	return ok
}

// Len returns the number of registered keys.
func (kf *Keyed[K]) Len() int { return len(kf.keys) }

// Count returns the current number of disjoint sets.
func (kf *Keyed[K]) Count() int { return kf.forest.Count() }

// Find returns the representative key of k's set.
//
// Errors:
//   - ErrUnknownKey if k was not registered.
func (kf *Keyed[K]) Find(k K) (K, error) {
	i, err := kf.lookup(k)
	if err != nil {
		var zero K

		return zero, err
	}

	return kf.keys[kf.forest.find(i)], nil
}

// Union merges the sets of a and b; false means they were already joined.
//
// Errors:
//   - ErrUnknownKey if either key was not registered (nothing is mutated).
func (kf *Keyed[K]) Union(a, b K) (bool, error) {
	i, err := kf.lookup(a)
	if err != nil {
		return false, err
	}
	j, err := kf.lookup(b)
	if err != nil {
		return false, err
	}

	return kf.forest.union(i, j), nil
}

// Connected reports whether a and b are in the same set.
//
// Errors:
//   - ErrUnknownKey if either key was not registered.
func (kf *Keyed[K]) Connected(a, b K) (bool, error) {
	i, err := kf.lookup(a)
	if err != nil {
		return false, err
	}
	j, err := kf.lookup(b)
	if err != nil {
		return false, err
	}

	return kf.forest.find(i) == kf.forest.find(j), nil
}

// Groups returns the partition as key slices. Keys inside a group and the
// groups themselves follow the registration order passed to NewKeyed.
func (kf *Keyed[K]) Groups() [][]K {
	idx := kf.forest.Groups()
	out := make([][]K, len(idx))
	for gi, group := range idx {
		out[gi] = make([]K, len(group))
		for i, el := range group {
			out[gi][i] = kf.keys[el]
		}
	}

	return out
}

func (kf *Keyed[K]) lookup(k K) (int, error) {
	i, ok := kf.index[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}

	return i, nil
}
