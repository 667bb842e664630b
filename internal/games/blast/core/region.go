package core

// hasSameColorNeighbor checks the four orthogonal neighbors of (row, col).
// It is the cheap rejection for isolated tiles before a full traversal.
func (g *Grid) hasSameColorNeighbor(row, col int, color Color) bool {
	for _, d := range neighbors {
		if g.colorAt(row+d.Row, col+d.Col) == color {
			return true
		}
	}
	return false
}

// Region returns the 4-connected same-color region containing (row, col)
// in breadth-first discovery order, starting with the cell itself.
// Returns nil if the position is out of bounds or empty.
//
// The visited set is allocated per call, so the grid carries no
// traversal state between calls.
func (g *Grid) Region(row, col int) []Cell {
	if !g.IsWithinBounds(row, col) {
		return nil
	}
	start := g.cells[g.index(row, col)]
	if start.IsEmpty() {
		return nil
	}

	visited := make([]bool, len(g.cells))
	visited[g.index(row, col)] = true

	queue := []Pos{start.Pos()}
	region := make([]Cell, 0, 8)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		region = append(region, g.cells[g.index(cur.Row, cur.Col)])

		for _, d := range neighbors {
			nr, nc := cur.Row+d.Row, cur.Col+d.Col
			if !g.IsWithinBounds(nr, nc) {
				continue
			}
			i := g.index(nr, nc)
			if visited[i] {
				continue
			}
			next := g.cells[i]
			if !next.Occupied || next.Color != start.Color {
				continue
			}
			// Mark on enqueue so a cell is never queued twice
			visited[i] = true
			queue = append(queue, next.Pos())
		}
	}

	return region
}

// Regions partitions all occupied cells into maximal same-color regions.
// Regions are ordered by their first cell in row-major order.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.cells))
	var regions [][]Cell
	for i, c := range g.cells {
		if seen[i] || !c.Occupied {
			continue
		}
		region := g.Region(c.Row, c.Col)
		for _, rc := range region {
			seen[g.index(rc.Row, rc.Col)] = true
		}
		regions = append(regions, region)
	}
	return regions
}
