// SPDX-License-Identifier: MIT

package dsu

import "sync"

// Synced is a Forest guarded by a single exclusive lock.
//
// Every method, including the read-looking Find and Connected, takes the
// lock: Find compresses paths and must not interleave with a Union
// touching the same trees.
type Synced struct {
	mu     sync.Mutex
	forest *Forest
}

// NewSynced creates a lock-guarded Forest of n singletons.
//
// Errors:
//   - ErrInvalidSize if n < 0.
func NewSynced(n int) (*Synced, error) {
	f, err := New(n)
	if err != nil {
		return nil, err
	}

	return &Synced{forest: f}, nil
}

// Len returns the universe size.
func (s *Synced) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forest.Len()
}

// Count returns the current number of sets.
func (s *Synced) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forest.Count()
}

// Find is Forest.Find under the lock.
func (s *Synced) Find(x int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forest.Find(x)
}

// Union is Forest.Union under the lock.
func (s *Synced) Union(x, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forest.Union(x, y)
}

// Connected is Forest.Connected under the lock.
func (s *Synced) Connected(x, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forest.Connected(x, y)
}

// Groups returns a snapshot of the partition taken under the lock.
func (s *Synced) Groups() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.forest.Groups()
}
