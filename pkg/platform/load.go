package platform

// Load returns the total load on the north edge: every rolling boulder at
// row r contributes Size - r.
func (g *Grid) Load() int {
	load := 0
	for row := 0; row < g.size; row++ {
		weight := g.size - row
		for _, c := range g.cells[row*g.size : (row+1)*g.size] {
			if c == Rolling {
				load += weight
			}
		}
	}
	return load
}
