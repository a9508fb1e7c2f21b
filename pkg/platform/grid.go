package platform

import (
	"fmt"
	"slices"
	"strings"
)

// Grid is a square platform of side Size, stored row-major.
// The zero value is not usable; create grids with New or Parse.
type Grid struct {
	size  int
	cells []Cell
}

// New returns an all-empty grid of the given side length.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}

	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = Empty
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// At returns the cell at (row, col). Both coordinates must be in [0, Size).
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores c at (row, col). Both coordinates must be in [0, Size).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("platform: cell (%d, %d) out of range for size %d", row, col, g.size))
	}
	return row*g.size + col
}

// Equal reports whether both grids have the same size and cell contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.size == other.size && slices.Equal(g.cells, other.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: slices.Clone(g.cells)}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// String renders the grid as Size newline-terminated rows.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for row := 0; row < g.size; row++ {
		for _, c := range g.cells[row*g.size : (row+1)*g.size] {
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
