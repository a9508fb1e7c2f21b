package platform

import (
	"fmt"
	"math"
)

// Fingerprint is an exact, row-major serialization of a grid's cells.
// It is immutable and comparable, and is meant to be used as a map key.
type Fingerprint string

// Fingerprint captures the current cell contents of the grid.
func (g *Grid) Fingerprint() Fingerprint {
	return Fingerprint(g.cells)
}

// FromFingerprint rebuilds the grid a fingerprint was taken from.
func FromFingerprint(fp Fingerprint) (*Grid, error) {
	size := int(math.Sqrt(float64(len(fp))))
	if size < 1 || size*size != len(fp) {
		return nil, fmt.Errorf("fingerprint length %d is not a positive square", len(fp))
	}

	cells := []Cell(fp)
	for i, c := range cells {
		if !c.Valid() {
			return nil, fmt.Errorf("fingerprint byte %d: unknown cell %q", i, byte(c))
		}
	}

	return &Grid{size: size, cells: cells}, nil
}
