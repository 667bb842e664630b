package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
)

// recorder captures every signal an engine or tracker emits.
type recorder struct {
	ready    int
	invalid  []error
	removals []core.Removal
	config   []error
	updates  []core.Goal
	ended    []bool
}

func (r *recorder) GridReady(*core.Grid) { r.ready++ }
func (r *recorder) InvalidMove(_ int, _ int, reason error) { r.invalid = append(r.invalid, reason) }
func (r *recorder) RegionRemoved(rm core.Removal) { r.removals = append(r.removals, rm) }
func (r *recorder) ConfigError(err error) { r.config = append(r.config, err) }
func (r *recorder) GoalUpdated(g core.Goal) { r.updates = append(r.updates, g) }
func (r *recorder) LevelEnded(won bool) { r.ended = append(r.ended, won) }

// layout splits top-first row strings ("RRG", "GBY", ...) into level codes.
func layout(rows ...string) []string {
	var codes []string
	for _, row := range rows {
		codes = append(codes, strings.Split(row, "")...)
	}
	return codes
}

// buildEngine builds an engine from top-first rows and fails the test on error.
func buildEngine(t *testing.T, rows ...string) (*core.Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e := core.NewEngine(rec)
	spec := core.GridSpec{Length: len(rows), Layout: layout(rows...)}
	if err := e.Build(spec, nil); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return e, rec
}

// positions extracts cell positions from a slice of cells.
func positions(cells []core.Cell) []core.Pos {
	ps := make([]core.Pos, len(cells))
	for i, c := range cells {
		ps[i] = c.Pos()
	}
	return ps
}

// assertOccupancy checks Occupied == (Color != None) for every cell.
func assertOccupancy(t *testing.T, g *core.Grid) {
	t.Helper()
	for _, c := range g.Cells() {
		if c.Occupied != (c.Color != core.ColorNone) {
			t.Errorf("cell %v: occupied=%v with color %v", c.Pos(), c.Occupied, c.Color)
		}
	}
}

// removalOf builds a removal of n cells of the given color.
func removalOf(color core.Color, n int) core.Removal {
	cells := make([]core.Cell, n)
	for i := range cells {
		cells[i] = core.Cell{Row: 0, Col: i, Color: color, Occupied: true}
	}
	return core.Removal{Origin: core.P(0, 0), Cells: cells}
}
