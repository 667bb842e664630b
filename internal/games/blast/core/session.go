package core

import "math/rand"

// LevelSpec is everything the core needs to start a level.
type LevelSpec struct {
	Grid  GridSpec
	Goals []GoalDecl
}

// Session wires an Engine and a Tracker for one level.
// The tracker is registered as an engine observer at construction, so every
// removal flows engine -> tracker without any shared state.
type Session struct {
	engine  *Engine
	tracker *Tracker
	moves   int
}

// NewSession builds the goal set and the grid for a level.
// gridObs and goalObs may be nil. The tracker sees removals before gridObs.
func NewSession(spec LevelSpec, rng *rand.Rand, gridObs GridObserver, goalObs GoalObserver) (*Session, error) {
	tracker := NewTracker(spec.Goals, goalObs)

	observers := GridObservers{tracker}
	if gridObs != nil {
		observers = append(observers, gridObs)
	}
	engine := NewEngine(observers)

	if err := engine.Build(spec.Grid, rng); err != nil {
		return nil, err
	}

	return &Session{
		engine:  engine,
		tracker: tracker,
	}, nil
}

// Tap forwards a tap to the engine. Only successful taps count as moves.
func (s *Session) Tap(row, col int) (Removal, error) {
	removal, err := s.engine.ProcessTap(row, col)
	if err != nil {
		return removal, err
	}
	s.moves++
	return removal, nil
}

// Grid returns the session grid.
func (s *Session) Grid() *Grid {
	return s.engine.Grid()
}

// Goals returns the current goal progress.
func (s *Session) Goals() []Goal {
	return s.tracker.Goals()
}

// Won returns true once all goals are complete.
func (s *Session) Won() bool {
	return s.tracker.Completed()
}

// Moves returns the number of successful taps.
func (s *Session) Moves() int {
	return s.moves
}

// Stuck returns true if the level is not won and no tap can clear anything.
func (s *Session) Stuck() bool {
	return !s.Won() && !s.Grid().HasMoves()
}
