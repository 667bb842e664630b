package core

import (
	"fmt"
	"math/rand"
	"time"
)

// GridSpec declares how to build a grid for a level.
type GridSpec struct {
	Length      int      // Side length of the square grid
	PaletteSize int      // Number of palette colors used for random grids
	Random      bool     // Draw every cell at random instead of using Layout
	Layout      []string // Length*Length color codes, top row first, left to right
}

// Validate checks the structural parts of the spec.
// Bad color codes are not structural and are reported during Build instead.
func (s GridSpec) Validate() error {
	if s.Length <= 0 {
		return ValidationError{
			Code:    CodeInvalidLength,
			Message: fmt.Sprintf("grid length must be positive, got %d", s.Length),
		}
	}
	if s.Random && (s.PaletteSize < 1 || s.PaletteSize > PaletteSize) {
		return ValidationError{
			Code:    CodeInvalidPalette,
			Message: fmt.Sprintf("palette size must be in [1,%d], got %d", PaletteSize, s.PaletteSize),
		}
	}
	if !s.Random && len(s.Layout) != s.Length*s.Length {
		return ValidationError{
			Code:    CodeLayoutSize,
			Message: fmt.Sprintf("layout has %d codes, want %d", len(s.Layout), s.Length*s.Length),
		}
	}
	return nil
}

// LayoutIndex maps a bottom-first (row, col) to its index in a top-first layout.
func LayoutIndex(length, row, col int) int {
	return (length-1-row)*length + col
}

// Engine owns a grid and runs the tap-to-clear rules on it.
// It is not safe for concurrent use; callers deliver one event at a time.
type Engine struct {
	grid     *Grid
	observer GridObserver
}

// NewEngine creates an engine reporting to the given observer.
// A nil observer is replaced by NopGridObserver.
func NewEngine(observer GridObserver) *Engine {
	if observer == nil {
		observer = NopGridObserver{}
	}
	return &Engine{observer: observer}
}

// Grid returns the current grid, or nil before the first Build.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Build replaces the grid with a new one built from spec and emits GridReady.
// rng is only used for random grids; nil means a time-seeded source.
//
// Structural faults return a ValidationError and leave the previous grid in
// place. Unrecognized color codes are reported through ConfigError and the
// affected cells are left empty, so the occupancy invariant always holds.
func (e *Engine) Build(spec GridSpec, rng *rand.Rand) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	g := newGrid(spec.Length)

	if spec.Random {
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		for i := range g.cells {
			g.place(i, Color(1+rng.Intn(spec.PaletteSize)))
		}
	} else {
		for row := 0; row < spec.Length; row++ {
			for col := 0; col < spec.Length; col++ {
				src := LayoutIndex(spec.Length, row, col)
				code := spec.Layout[src]
				color, ok := ParseColor(code)
				if !ok {
					e.observer.ConfigError(&ConfigError{
						Code:  CodeInvalidColor,
						Field: "starting_grid",
						Token: code,
						Index: src,
					})
				}
				g.place(g.index(row, col), color)
			}
		}
	}

	e.grid = g
	e.observer.GridReady(g)
	return nil
}

// ProcessTap handles a tap at (row, col).
//
// On success every cell of the tapped region is cleared at once and the
// removal is both returned and emitted through RegionRemoved. On failure a
// *MoveError is returned and emitted through InvalidMove; the grid is not
// touched.
func (e *Engine) ProcessTap(row, col int) (Removal, error) {
	if e.grid == nil || !e.grid.IsWithinBounds(row, col) {
		return Removal{}, e.reject(row, col, ErrOutOfBounds)
	}

	cell := e.grid.cells[e.grid.index(row, col)]
	if cell.IsEmpty() {
		return Removal{}, e.reject(row, col, ErrEmptyCell)
	}

	if !e.grid.hasSameColorNeighbor(row, col, cell.Color) {
		return Removal{}, e.reject(row, col, ErrNoMatch)
	}

	region := e.grid.Region(row, col)
	for _, c := range region {
		e.grid.clear(c.Row, c.Col)
	}

	removal := Removal{
		Origin: P(row, col),
		Cells:  region,
	}
	e.observer.RegionRemoved(removal)
	return removal, nil
}

// reject builds a MoveError and reports it.
func (e *Engine) reject(row, col int, reason error) error {
	err := &MoveError{Row: row, Col: col, Err: reason}
	e.observer.InvalidMove(row, col, err)
	return err
}
