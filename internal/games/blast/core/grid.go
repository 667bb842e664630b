package core

// Grid is a square board of cells with side Length.
// Cells are stored in row-major order: index = row*Length + col.
// Row 0 is the bottom edge of the board.
type Grid struct {
	length int
	cells  []Cell
}

// newGrid allocates an empty grid with every cell placed at its position.
func newGrid(length int) *Grid {
	g := &Grid{
		length: length,
		cells:  make([]Cell, length*length),
	}
	for row := 0; row < length; row++ {
		for col := 0; col < length; col++ {
			g.cells[g.index(row, col)] = Cell{Row: row, Col: col}
		}
	}
	return g
}

// NewGridFromColors builds a grid from bottom-first, row-major colors.
// ColorNone entries become empty cells. Mainly useful for tests and replays.
func NewGridFromColors(length int, colors []Color) *Grid {
	g := newGrid(length)
	for i := range g.cells {
		if i < len(colors) {
			g.place(i, colors[i])
		}
	}
	return g
}

// index converts a position to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.length + col
}

// place sets the color of the cell at flat index i keeping occupancy consistent.
func (g *Grid) place(i int, c Color) {
	if c.Valid() {
		g.cells[i].Color = c
		g.cells[i].Occupied = true
		return
	}
	g.cells[i].Color = ColorNone
	g.cells[i].Occupied = false
}

// clear empties the cell at (row, col).
func (g *Grid) clear(row, col int) {
	i := g.index(row, col)
	g.cells[i].Color = ColorNone
	g.cells[i].Occupied = false
}

// Length returns the side length of the grid.
func (g *Grid) Length() int {
	return g.length
}

// IsWithinBounds returns true iff 0 <= row < Length and 0 <= col < Length.
func (g *Grid) IsWithinBounds(row, col int) bool {
	return row >= 0 && row < g.length && col >= 0 && col < g.length
}

// Cell returns a copy of the cell at (row, col).
// The second result is false when the position is out of bounds.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.IsWithinBounds(row, col) {
		return Cell{Row: row, Col: col}, false
	}
	return g.cells[g.index(row, col)], true
}

// colorAt returns the color at (row, col), ColorNone when out of bounds.
func (g *Grid) colorAt(row, col int) Color {
	if !g.IsWithinBounds(row, col) {
		return ColorNone
	}
	return g.cells[g.index(row, col)].Color
}

// Cells returns a copy of all cells in row-major, bottom-first order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c.Occupied {
			count++
		}
	}
	return count
}

// IsCleared returns true if no cell is occupied.
func (g *Grid) IsCleared() bool {
	return g.OccupiedCount() == 0
}

// CountByColor returns the number of occupied cells per color.
func (g *Grid) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range g.cells {
		if c.Occupied {
			counts[c.Color]++
		}
	}
	return counts
}

// HasMoves returns true if at least one tap would clear a region,
// i.e. some occupied cell has a same-colored orthogonal neighbor.
func (g *Grid) HasMoves() bool {
	for _, c := range g.cells {
		if !c.Occupied {
			continue
		}
		// Checking north and east covers every adjacent pair once
		if g.colorAt(c.Row+1, c.Col) == c.Color || g.colorAt(c.Row, c.Col+1) == c.Color {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		length: g.length,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same length and contents.
// A nil grid only equals another nil grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.length != other.length {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
