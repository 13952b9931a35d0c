// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/unionfind/gridgraph"
)

func randomGrid(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(5)
		}
	}

	return grid
}

// BenchmarkConnectedComponents labels a random 1000×1000 grid with values in [0,4].
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.From2D(randomGrid(1000), gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

func BenchmarkCountIslands(b *testing.B) {
	gg, err := gridgraph.From2D(randomGrid(1000), gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.CountIslands()
	}
}

// BenchmarkExpandIsland bridges two single-cell islands at opposite corners.
func BenchmarkExpandIsland(b *testing.B) {
	const n = 500
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	grid[0][0] = 1
	grid[n-1][n-1] = 1

	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.ExpandIsland(0, 1)
	}
}
