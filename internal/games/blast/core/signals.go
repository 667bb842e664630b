package core

// Removal is the result of a successful tap: the cleared region.
// Cells are snapshots taken before clearing, so each keeps its original color.
// Order is BFS discovery order starting at the tapped cell.
type Removal struct {
	Origin Pos
	Cells  []Cell
}

// Color returns the color of the removed region.
func (r Removal) Color() Color {
	if len(r.Cells) == 0 {
		return ColorNone
	}
	return r.Cells[0].Color
}

// Len returns the number of removed cells.
func (r Removal) Len() int {
	return len(r.Cells)
}

// GridObserver receives signals from an Engine.
// Embed NopGridObserver to implement only the methods you need.
type GridObserver interface {
	// GridReady is called once after a successful build.
	GridReady(g *Grid)

	// InvalidMove is called for every rejected tap.
	// reason is a *MoveError wrapping ErrOutOfBounds, ErrEmptyCell or ErrNoMatch.
	InvalidMove(row, col int, reason error)

	// RegionRemoved is called after a region has been cleared.
	RegionRemoved(r Removal)

	// ConfigError is called for each bad token met while building.
	ConfigError(err error)
}

// NopGridObserver implements GridObserver with no-ops.
type NopGridObserver struct{}

func (NopGridObserver) GridReady(*Grid) {}
func (NopGridObserver) InvalidMove(int, int, error) {}
func (NopGridObserver) RegionRemoved(Removal) {}
func (NopGridObserver) ConfigError(error) {}

// GridObservers fans signals out to several observers in order.
type GridObservers []GridObserver

func (o GridObservers) GridReady(g *Grid) {
	for _, obs := range o {
		obs.GridReady(g)
	}
}

func (o GridObservers) InvalidMove(row, col int, reason error) {
	for _, obs := range o {
		obs.InvalidMove(row, col, reason)
	}
}

func (o GridObservers) RegionRemoved(r Removal) {
	for _, obs := range o {
		obs.RegionRemoved(r)
	}
}

func (o GridObservers) ConfigError(err error) {
	for _, obs := range o {
		obs.ConfigError(err)
	}
}

// GoalObserver receives signals from a Tracker.
type GoalObserver interface {
	// GoalUpdated is called after a goal's remaining count changed.
	GoalUpdated(g Goal)

	// LevelEnded is called at most once per level.
	LevelEnded(won bool)

	// ConfigError is called for each unrecognized goal code.
	ConfigError(err error)
}

// NopGoalObserver implements GoalObserver with no-ops.
type NopGoalObserver struct{}

func (NopGoalObserver) GoalUpdated(Goal) {}
func (NopGoalObserver) LevelEnded(bool) {}
func (NopGoalObserver) ConfigError(error) {}
