// SPDX-License-Identifier: MIT

package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPairs returns m pairs over [0,n) from a fixed-seed generator.
func randomPairs(r *rand.Rand, n, m int) [][2]int {
	pairs := make([][2]int, m)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	return pairs
}

// TestProperty_CountTracksMerges checks that Count drops by exactly one per
// true Union and never on a false one, and that a merged pair is connected.
func TestProperty_CountTracksMerges(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	f := mustForest(t, n)

	want := n
	for _, p := range randomPairs(r, n, 500) {
		already := mustConnected(t, f, p[0], p[1])
		merged := mustUnion(t, f, p[0], p[1])
		assert.Equal(t, !already, merged, "union%v", p)
		if merged {
			want--
		}
		require.Equal(t, want, f.Count())
		assert.True(t, mustConnected(t, f, p[0], p[1]))
		assert.False(t, mustUnion(t, f, p[0], p[1]), "repeat union%v", p)
		require.Equal(t, want, f.Count())
	}
	assert.Len(t, f.Groups(), f.Count())
}

// TestProperty_OrderIndependence applies the same unions in shuffled orders
// and compares the resulting partitions.
func TestProperty_OrderIndependence(t *testing.T) {
	const n = 120
	r := rand.New(rand.NewSource(7))
	pairs := randomPairs(r, n, 90)

	base := mustForest(t, n)
	for _, p := range pairs {
		mustUnion(t, base, p[0], p[1])
	}
	want := base.Groups()

	for round := 0; round < 10; round++ {
		shuffled := append([][2]int(nil), pairs...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		f := mustForest(t, n)
		for _, p := range shuffled {
			// Swap endpoints too; direction must not matter either.
			mustUnion(t, f, p[1], p[0])
		}
		if diff := cmp.Diff(want, f.Groups()); diff != "" {
			t.Fatalf("round %d: partition mismatch (-want +got):\n%s", round, diff)
		}
		assert.Equal(t, base.Count(), f.Count())
	}
}

// TestProperty_GroupsMatchFind cross-checks Groups against pairwise Connected.
func TestProperty_GroupsMatchFind(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(1))
	f := mustForest(t, n)
	for _, p := range randomPairs(r, n, 25) {
		mustUnion(t, f, p[0], p[1])
	}

	label := make([]int, n)
	total := 0
	for gi, group := range f.Groups() {
		total += len(group)
		for _, el := range group {
			label[el] = gi
		}
		size, err := f.SizeOf(group[0])
		require.NoError(t, err)
		assert.Equal(t, len(group), size)
	}
	assert.Equal(t, n, total, "every element belongs to exactly one group")

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			assert.Equal(t, label[x] == label[y], mustConnected(t, f, x, y), "pair (%d,%d)", x, y)
		}
	}
}
