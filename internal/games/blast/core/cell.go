// Package core provides the grid engine and goal tracking for Tile Blast.
// This package is UI-agnostic, synchronous and has no external dependencies.
package core

import "fmt"

// Cell is one addressable grid position.
// Row and Col never change once the grid is built.
type Cell struct {
	Row      int
	Col      int
	Color    Color
	Occupied bool
}

// String returns a compact description of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d:%s)", c.Row, c.Col, c.Color)
}

// IsEmpty returns true if the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return !c.Occupied || c.Color == ColorNone
}

// Pos returns the cell position.
func (c Cell) Pos() Pos {
	return Pos{Row: c.Row, Col: c.Col}
}

// Pos is a (row, col) grid address. Row 0 is the bottom edge.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// neighbors lists the 4-connected offsets in N, E, S, W order.
// North is row+1 because row 0 is the bottom of the board.
var neighbors = [4]Pos{
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
}
