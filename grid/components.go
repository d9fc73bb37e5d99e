package grid

// Components finds the 4-connected regions of traversable (unblocked)
// cells. Each component lists its points in discovery order; components
// are ordered by their first cell in row-major order.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Components() [][]Point {
	seen := make([]bool, len(g.cells))
	var comps [][]Point

	for i := range g.cells {
		if g.cells[i].Blocked || seen[i] {
			continue
		}
		// BFS to collect component
		queue := []Point{g.cells[i].Point}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, q := range g.Neighbors(queue[qi]) {
				j := g.index(q.Row, q.Col)
				if seen[j] || g.cells[j].Blocked {
					continue
				}
				seen[j] = true
				queue = append(queue, q)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
