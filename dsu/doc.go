// SPDX-License-Identifier: MIT

// Package dsu implements a disjoint-set forest (union-find) over a fixed
// universe of elements, with union by rank and full path compression.
//
// What:
//
//   - Forest partitions the indices {0..N-1} into disjoint sets.
//     All elements start as singletons; Union merges two sets, Find returns
//     the representative (root) of an element's set, Connected reports
//     whether two elements share a set, Count returns the number of sets.
//   - Keyed[K] is the same forest addressed by arbitrary comparable keys
//     (vertex IDs, coordinates, names) fixed at construction time.
//   - Synced wraps a Forest behind one exclusive lock for shared use.
//
// Why:
//
//   - Cycle detection: Union returns false when an edge joins two elements
//     that are already connected, i.e. the edge closes a cycle.
//   - Connectivity: Count after all unions is the number of components.
//   - Kruskal MST, island labelling, provinces, equivalence classes.
//
// Algorithm:
//
//   - Find walks parent links to the root, then rewrites every visited
//     parent to point directly at that root (two-pass, iterative, no recursion).
//   - Union attaches the root with the lower rank under the root with the
//     higher rank. On a tie the second root is attached under the first and
//     the surviving root's rank grows by exactly one. Ranks are always read
//     at roots, never at the original elements.
//
// Complexity:
//
//   - New:      Time O(N), Memory O(N)
//   - Find / Union / Connected: amortized O(α(N)) (inverse Ackermann)
//   - Count / Len: O(1)
//   - Groups:   Time O(N·α(N)), Memory O(N)
//
// Errors:
//
//   - ErrInvalidSize      negative universe size passed to New / NewSynced
//   - ErrIndexOutOfRange  index outside [0, N)
//   - ErrDuplicateKey     NewKeyed received the same key twice
//   - ErrUnknownKey       key not registered in a Keyed forest
//
// Every operation validates its arguments before touching the forest, so a
// failed call never leaves a partial mutation behind.
//
// Concurrency:
//
//	Forest and Keyed are not safe for concurrent use: Find rewrites parent
//	links as a side effect. Use Synced, or serialize access externally.
package dsu
