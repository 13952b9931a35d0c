// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/gridgraph"
)

func mustGrid(t *testing.T, values [][]int, opts gridgraph.GridOptions) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)

	return gg
}

func conn(c gridgraph.Connectivity) gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = c

	return opts
}

// TestConnectedComponents_Simple4 labels a 4×3 grid under Conn4.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestConnectedComponents_Simple4(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, conn(gridgraph.Conn4))

	want := [][]int{{1, 2, 4, 5}, {10, 11}}
	if diff := cmp.Diff(want, gg.ConnectedComponents()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, gg.CountIslands())
}

// TestConnectedComponents_Diagonal covers the X pattern under both connectivities.
func TestConnectedComponents_Diagonal(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}

	g8 := mustGrid(t, grid, conn(gridgraph.Conn8))
	comps := g8.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	g4 := mustGrid(t, grid, conn(gridgraph.Conn4))
	assert.Equal(t, 9, g4.CountIslands())
}

// TestConnectedComponents_AntiDiagonal checks the down-left neighbor under Conn8.
func TestConnectedComponents_AntiDiagonal(t *testing.T) {
	gg := mustGrid(t, [][]int{{0, 1}, {1, 0}}, conn(gridgraph.Conn8))

	assert.Equal(t, [][]int{{1, 2}}, gg.ConnectedComponents())
}

func TestConnectedComponents_AllWaterAndSingleCell(t *testing.T) {
	water := mustGrid(t, [][]int{{0, 0}, {0, 0}}, conn(gridgraph.Conn4))
	assert.Empty(t, water.ConnectedComponents())
	assert.Zero(t, water.CountIslands())

	single := mustGrid(t, [][]int{{0, 1}}, conn(gridgraph.Conn4))
	assert.Equal(t, [][]int{{1}}, single.ConnectedComponents())
	assert.Equal(t, 1, single.CountIslands())
}

// TestConnectedComponents_Threshold shows raising the threshold shrinks land.
func TestConnectedComponents_Threshold(t *testing.T) {
	grid := [][]int{
		{1, 2, 3},
		{0, 2, 1},
	}
	cases := []struct {
		threshold int
		want      [][]int
	}{
		{1, [][]int{{0, 1, 2, 4, 5}}},
		{2, [][]int{{1, 2, 4}}},
		{3, [][]int{{2}}},
		{4, nil},
	}
	for _, tc := range cases {
		opts := gridgraph.DefaultGridOptions()
		opts.LandThreshold = tc.threshold
		gg := mustGrid(t, grid, opts)
		assert.Equal(t, tc.want, gg.ConnectedComponents(), "threshold %d", tc.threshold)
	}
}

func TestConnectedComponents_MatchValues(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}

	loose := mustGrid(t, grid, gridgraph.DefaultGridOptions())
	assert.Equal(t, [][]int{{1, 2, 5, 6, 10}, {4, 8, 9, 12, 13}}, loose.ConnectedComponents())

	opts := gridgraph.DefaultGridOptions()
	opts.MatchValues = true
	strict := mustGrid(t, grid, opts)
	assert.Equal(t, [][]int{{1, 2, 5, 6}, {4, 8, 9, 12, 13}, {10}}, strict.ConnectedComponents())
	assert.Equal(t, 3, strict.CountIslands())
}

// TestCountIslands_MatchesComponents cross-checks the two labelling entry points
// on random grids.
func TestCountIslands_MatchesComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		grid := make([][]int, 12)
		for y := range grid {
			grid[y] = make([]int, 15)
			for x := range grid[y] {
				grid[y][x] = rng.Intn(3)
			}
		}
		for _, c := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
			gg := mustGrid(t, grid, conn(c))
			comps := gg.ConnectedComponents()
			require.Equal(t, len(comps), gg.CountIslands(), "trial %d conn %d", trial, c)

			seen := make(map[int]bool)
			for i, comp := range comps {
				for j, cell := range comp {
					assert.False(t, seen[cell], "cell %d in two components", cell)
					seen[cell] = true
					if j > 0 {
						assert.Less(t, comp[j-1], cell, "component %d not ascending", i)
					}
				}
				if i > 0 {
					assert.Less(t, comps[i-1][0], comp[0], "components not ordered by first cell")
				}
			}
		}
	}
}
