package core

// GoalType identifies what a level goal counts.
type GoalType uint8

const (
	GoalNone GoalType = iota
	GoalCollectRed
	GoalCollectGreen
	GoalCollectBlue
	GoalCollectYellow
	GoalCollectAny
	goalTypeCount // Sentinel value for table sizing
)

// goalCodes maps level file codes to goal types.
var goalCodes = map[string]GoalType{
	"R": GoalCollectRed,
	"G": GoalCollectGreen,
	"B": GoalCollectBlue,
	"Y": GoalCollectYellow,
	"A": GoalCollectAny,
}

// goalForColor resolves the color-specific goal for a removed color.
var goalForColor = [colorCount]GoalType{
	ColorNone:   GoalNone,
	ColorRed:    GoalCollectRed,
	ColorGreen:  GoalCollectGreen,
	ColorBlue:   GoalCollectBlue,
	ColorYellow: GoalCollectYellow,
}

// String returns the string representation of a goal type.
func (t GoalType) String() string {
	switch t {
	case GoalCollectRed:
		return "collect red"
	case GoalCollectGreen:
		return "collect green"
	case GoalCollectBlue:
		return "collect blue"
	case GoalCollectYellow:
		return "collect yellow"
	case GoalCollectAny:
		return "collect any"
	default:
		return "none"
	}
}

// Color returns the tile color a color-specific goal counts.
// CollectAny and None return ColorNone.
func (t GoalType) Color() Color {
	for c, gt := range goalForColor {
		if gt == t && t != GoalNone {
			return Color(c)
		}
	}
	return ColorNone
}

// ParseGoalType converts a level file code (R, G, B, Y, A) to a GoalType.
// Unknown codes return GoalNone and false.
func ParseGoalType(code string) (GoalType, bool) {
	t, ok := goalCodes[code]
	return t, ok
}

// GoalDecl is a goal as declared in level configuration.
type GoalDecl struct {
	Type   string // Goal code
	Amount int    // Target amount
}

// Goal is the progress of one active goal.
type Goal struct {
	Type      GoalType
	Target    int
	Remaining int
}

// Done returns true once nothing remains to collect.
func (g Goal) Done() bool {
	return g.Remaining <= 0
}

// goalSlot is one entry of the fixed goal table.
type goalSlot struct {
	active    bool
	target    int
	remaining int
}

// Tracker owns the goal set of a level and decides when it is won.
// It implements GridObserver so it can be attached directly to an Engine.
type Tracker struct {
	NopGridObserver

	slots     [goalTypeCount]goalSlot
	order     []GoalType // Declaration order of active goals, for display
	observer  GoalObserver
	completed bool
}

// NewTracker builds the goal set from declarations.
// Unrecognized codes are reported through observer.ConfigError and skipped.
// If a goal type is declared twice the last declaration wins.
func NewTracker(decls []GoalDecl, observer GoalObserver) *Tracker {
	if observer == nil {
		observer = NopGoalObserver{}
	}
	t := &Tracker{observer: observer}

	for i, d := range decls {
		gt, ok := ParseGoalType(d.Type)
		if !ok {
			observer.ConfigError(&ConfigError{
				Code:  CodeInvalidGoal,
				Field: "goals",
				Token: d.Type,
				Index: i,
			})
			continue
		}
		amount := d.Amount
		if amount < 0 {
			amount = 0
		}
		if !t.slots[gt].active {
			t.order = append(t.order, gt)
		}
		t.slots[gt] = goalSlot{active: true, target: amount, remaining: amount}
	}

	return t
}

// Goals returns the active goals in declaration order.
func (t *Tracker) Goals() []Goal {
	goals := make([]Goal, 0, len(t.order))
	for _, gt := range t.order {
		goals = append(goals, t.goal(gt))
	}
	return goals
}

// Goal returns the goal of the given type and whether it is active.
func (t *Tracker) Goal(gt GoalType) (Goal, bool) {
	if gt >= goalTypeCount || !t.slots[gt].active {
		return Goal{Type: gt}, false
	}
	return t.goal(gt), true
}

func (t *Tracker) goal(gt GoalType) Goal {
	s := t.slots[gt]
	return Goal{Type: gt, Target: s.target, Remaining: s.remaining}
}

// Completed returns true once every goal reached zero.
func (t *Tracker) Completed() bool {
	return t.completed
}

// RegionRemoved updates progress for a removal.
// All removed cells share one color, so only the first cell is read.
func (t *Tracker) RegionRemoved(r Removal) {
	if len(r.Cells) == 0 {
		return
	}

	color := r.Cells[0].Color
	count := len(r.Cells)
	updated := false

	if color < colorCount {
		if gt := goalForColor[color]; gt != GoalNone && t.decrement(gt, count) {
			updated = true
		}
	}

	// CollectAny counts every removal, independently of the color goal
	if t.decrement(GoalCollectAny, count) {
		updated = true
	}

	if !updated {
		return
	}
	t.checkCompletion()
}

// decrement lowers an active, unfinished goal by n, floored at zero.
func (t *Tracker) decrement(gt GoalType, n int) bool {
	s := &t.slots[gt]
	if !s.active || s.remaining <= 0 {
		return false
	}
	s.remaining -= n
	if s.remaining < 0 {
		s.remaining = 0
	}
	t.observer.GoalUpdated(t.goal(gt))
	return true
}

// checkCompletion emits LevelEnded(true) the first time all goals are done.
func (t *Tracker) checkCompletion() {
	if t.completed {
		return
	}
	for _, gt := range t.order {
		if t.slots[gt].remaining > 0 {
			return
		}
	}
	t.completed = true
	t.observer.LevelEnded(true)
}
