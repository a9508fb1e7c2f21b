package engine_test

import (
	"strings"
	"testing"

	"github.com/parabolic/parabolic/pkg/platform"
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

func mustParse(t *testing.T, input string, dimension int) *platform.Grid {
	t.Helper()
	g, _, err := platform.Parse(strings.NewReader(input), platform.ParseOptions{Dimension: dimension})
	if err != nil {
		t.Fatalf("Failed to parse grid: %v", err)
	}
	return g
}

// literal spins a copy of g n times without any cycle detection.
func literal(g *platform.Grid, n int) *platform.Grid {
	out := g.Clone()
	for i := 0; i < n; i++ {
		for _, d := range platform.Directions {
			out.Tilt(d)
		}
	}
	return out
}
