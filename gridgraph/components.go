// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/unionfind/dsu"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// according to gg.Conn (and gg.MatchValues).
//
// Each land cell is unioned with its land neighbors that come later in
// row-major order; the forest roots then label the islands.
//
// Determinism:
//   - Cell indices (row-major) inside a component are ascending.
//   - Components are ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·α(W·H)).
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	forest := gg.label()

	var comps [][]int
	slot := make(map[int]int)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			i := gg.index(x, y)
			root, _ := forest.Find(i)
			s, ok := slot[root]
			if !ok {
				s = len(comps)
				slot[root] = s
				comps = append(comps, nil)
			}
			comps[s] = append(comps[s], i)
		}
	}

	return comps
}

// CountIslands returns the number of land components without materializing them.
// Time: O(W·H·α(W·H)).
func (gg *GridGraph) CountIslands() int {
	forest := gg.label()
	water := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				water++
			}
		}
	}

	// Every water cell stays a singleton set in the forest.
	return forest.Count() - water
}

// label builds a forest over all cells in which every island is one set.
func (gg *GridGraph) label() *dsu.Forest {
	// Width and Height are positive by construction, so New cannot fail.
	forest, _ := dsu.New(gg.Width * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			for _, d := range gg.forwardOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				if gg.MatchValues && gg.CellValues[ny][nx] != gg.CellValues[y][x] {
					continue
				}
				_, _ = forest.Union(gg.index(x, y), gg.index(nx, ny))
			}
		}
	}

	return forest
}
