// SPDX-License-Identifier: MIT

package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/unionfind/dsu"
)

// BenchmarkUnionFind measures a mixed workload of 100k unions and 100k
// connectivity queries over 100k elements.
//
// Complexity: O((U+Q)·α(N)) per iteration.
func BenchmarkUnionFind(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, _ := dsu.New(n)
		for _, p := range pairs {
			_, _ = f.Union(p[0], p[1])
		}
		for _, p := range pairs {
			_, _ = f.Connected(p[1], p[0])
		}
	}
}

// BenchmarkKeyedUnion measures the map lookup overhead of Keyed.
func BenchmarkKeyedUnion(b *testing.B) {
	const n = 10_000
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i * 7
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kf, _ := dsu.NewKeyed(keys)
		for j := 1; j < n; j++ {
			_, _ = kf.Union(keys[j-1], keys[j])
		}
	}
}
