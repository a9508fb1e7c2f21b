package platform

import "fmt"

// Cell is the content of one platform position.
type Cell byte

const (
	// Empty is free space a rolling boulder may move into.
	Empty Cell = '.'

	// Fixed is a cube-shaped rock that never moves.
	Fixed Cell = '#'

	// Rolling is a round boulder that slides when the platform tilts.
	Rolling Cell = 'O'
)

// Valid reports whether c is one of the three known cell symbols.
func (c Cell) Valid() bool {
	switch c {
	case Empty, Fixed, Rolling:
		return true
	default:
		return false
	}
}

// String returns the single-character symbol for the cell.
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Cell(%#x)", byte(c))
	}
	return string(rune(c))
}
