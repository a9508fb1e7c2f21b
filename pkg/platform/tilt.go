package platform

import (
	"fmt"
	"strings"
)

// Direction is the edge the platform is tilted toward.
type Direction int

const (
	North Direction = iota
	West
	South
	East
)

// Directions lists every direction in spin-cycle order.
var Directions = []Direction{North, West, South, East}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "west", "w":
		return West, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (must be north, west, south or east)", s)
	}
}

// delta is the row/column step toward the edge.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		panic(fmt.Sprintf("platform: invalid direction %d", int(d)))
	}
}

// scan maps the i-th row and j-th column of the iteration to grid
// coordinates, so that cells nearer the target edge are visited first.
func (d Direction) scan(i, j, n int) (int, int) {
	switch d {
	case South:
		return n - 1 - i, j
	case East:
		return i, n - 1 - j
	default:
		return i, j
	}
}

// Tilt slides every rolling boulder toward d until it meets a fixed rock,
// another boulder, or the edge.
func (g *Grid) Tilt(d Direction) {
	dr, dc := d.delta()
	n := g.size

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row, col := d.scan(i, j, n)
			if g.cells[row*n+col] != Rolling {
				continue
			}

			finalRow, finalCol := row, col
			for {
				nextRow, nextCol := finalRow+dr, finalCol+dc
				if nextRow < 0 || nextRow >= n || nextCol < 0 || nextCol >= n {
					break
				}
				if g.cells[nextRow*n+nextCol] != Empty {
					break
				}
				finalRow, finalCol = nextRow, nextCol
			}

			g.cells[row*n+col] = Empty
			g.cells[finalRow*n+finalCol] = Rolling
		}
	}
}

// Settle reaches the same configuration as Tilt by moving every boulder one
// step at a time, repeating full passes until a pass moves nothing.
func (g *Grid) Settle(d Direction) {
	dr, dc := d.delta()
	n := g.size

	for {
		moved := false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				row, col := d.scan(i, j, n)
				if g.cells[row*n+col] != Rolling {
					continue
				}

				nextRow, nextCol := row+dr, col+dc
				if nextRow < 0 || nextRow >= n || nextCol < 0 || nextCol >= n {
					continue
				}
				if g.cells[nextRow*n+nextCol] != Empty {
					continue
				}

				g.cells[nextRow*n+nextCol] = Rolling
				g.cells[row*n+col] = Empty
				moved = true
			}
		}
		if !moved {
			return
		}
	}
}

// Strategy selects the tilt algorithm.
type Strategy string

const (
	// StrategyScan uses Tilt.
	StrategyScan Strategy = "scan"

	// StrategySettle uses Settle.
	StrategySettle Strategy = "settle"
)

// ParseStrategy validates a strategy name. The empty string selects StrategyScan.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case "", StrategyScan:
		return StrategyScan, nil
	case StrategySettle:
		return StrategySettle, nil
	default:
		return "", fmt.Errorf("unknown tilt strategy %q (must be scan or settle)", s)
	}
}

// Apply tilts g toward d using the strategy's algorithm.
func (s Strategy) Apply(g *Grid, d Direction) {
	if s == StrategySettle {
		g.Settle(d)
		return
	}
	g.Tilt(d)
}
