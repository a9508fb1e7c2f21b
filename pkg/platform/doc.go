// Package platform models the square platform of rolling boulders and fixed
// rocks, and the operations that move the boulders around.
//
// # Overview
//
// A Grid is a fixed-size N×N buffer of cells stored row-major. Rolling
// boulders ('O') slide when the platform is tilted, fixed rocks ('#') never
// move, and empty cells ('.') are free space.
//
// # Tilting
//
// Tilt moves every rolling boulder as far as it can go toward one edge in a
// single scan, resolving each boulder against neighbours that have already
// settled. Settle reaches the same configuration by repeatedly moving every
// boulder one step until nothing moves. Tilt is the production path; Settle
// exists for cross-checking and is selectable through Strategy.
//
//	g, _, err := platform.Parse(strings.NewReader(input), platform.ParseOptions{Dimension: 10})
//	if err != nil {
//	    return err
//	}
//	g.Tilt(platform.North)
//	fmt.Println(g.Load())
//
// # Fingerprints
//
// Fingerprint returns an exact copy of the cell contents as an immutable
// string. Two grids have equal fingerprints if and only if their cells are
// equal, which makes fingerprints safe map keys for cycle detection.
package platform
