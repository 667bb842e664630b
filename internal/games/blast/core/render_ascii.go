package core

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// String renders the grid as ASCII, top row first, one character per cell.
// Empty cells are '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.length * (g.length + 1))
	for row := g.length - 1; row >= 0; row-- {
		for col := 0; col < g.length; col++ {
			sb.WriteRune(g.cells[g.index(row, col)].Color.Char())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Layout returns the grid as top-first color codes, the same shape a level
// file uses. Empty cells are returned as ".".
func (g *Grid) Layout() []string {
	codes := make([]string, 0, len(g.cells))
	for row := g.length - 1; row >= 0; row-- {
		for col := 0; col < g.length; col++ {
			codes = append(codes, string(g.cells[g.index(row, col)].Color.Char()))
		}
	}
	return codes
}

// Hash returns a hash of the grid contents for determinism checks.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "L:%d;", g.length)
	for _, c := range g.cells {
		fmt.Fprintf(h, "%d:%v,", c.Color, c.Occupied)
	}
	return h.Sum64()
}
