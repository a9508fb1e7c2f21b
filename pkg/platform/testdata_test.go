package platform

import (
	"math/rand"
	"strings"
	"testing"
)

const exampleInput = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

func mustParse(t *testing.T, input string, dimension int) *Grid {
	t.Helper()
	g, _, err := Parse(strings.NewReader(input), ParseOptions{Dimension: dimension})
	if err != nil {
		t.Fatalf("Failed to parse grid: %v", err)
	}
	return g
}

// randomGrid fills a grid with roughly 40% empty, 20% fixed and 40% rolling cells.
func randomGrid(rng *rand.Rand, size int) *Grid {
	g, _ := New(size)
	for i := range g.cells {
		switch v := rng.Intn(10); {
		case v < 4:
			g.cells[i] = Empty
		case v < 6:
			g.cells[i] = Fixed
		default:
			g.cells[i] = Rolling
		}
	}
	return g
}
