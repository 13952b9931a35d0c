// SPDX-License-Identifier: MIT

package dsu

import (
	"strconv"
	"strings"
)

// Groups returns the current partition, one slice per set.
//
// Determinism:
//   - Members of every group are in ascending order.
//   - Groups are ordered by their smallest member.
//
// Two forests holding the same partition return identical Groups output,
// whatever the order of the unions that built them.
//
// Complexity: Time O(N·α(N)), Memory O(N).
func (f *Forest) Groups() [][]int {
	n := len(f.parent)
	// slot[root] is the position of root's group in out, or -1 if not seen yet.
	slot := make([]int, n)
	for i := range slot {
		slot[i] = -1
	}

	out := make([][]int, 0, f.count)
	// Scanning i in ascending order yields sorted members and groups
	// ordered by their first (smallest) member without an explicit sort.
	for i := 0; i < n; i++ {
		root := f.find(i)
		if slot[root] < 0 {
			slot[root] = len(out)
			out = append(out, make([]int, 0, f.size[root]))
		}
		out[slot[root]] = append(out[slot[root]], i)
	}

	return out
}

// String renders the partition as "{0 3} {1} {2 4}" using Groups order.
func (f *Forest) String() string {
	var sb strings.Builder
	for gi, group := range f.Groups() {
		if gi > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('{')
		for i, el := range group {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(el))
		}
		sb.WriteByte('}')
	}

	return sb.String()
}
