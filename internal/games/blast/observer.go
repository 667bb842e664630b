package blast

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
)

// observer receives engine and tracker signals for a Game.
// It logs them and turns rejected taps into status messages.
type observer struct {
	g *Game
}

var (
	_ core.GridObserver = (*observer)(nil)
	_ core.GoalObserver = (*observer)(nil)
)

func (o *observer) GridReady(grid *core.Grid) {
	o.g.log.Debug("grid ready",
		"level", o.g.level.ID,
		"length", grid.Length(),
		"occupied", grid.OccupiedCount(),
	)
}

func (o *observer) InvalidMove(row, col int, reason error) {
	var msg string
	switch {
	case errors.Is(reason, core.ErrNoMatch):
		msg = "No matching neighbor"
	case errors.Is(reason, core.ErrEmptyCell):
		msg = "That cell is empty"
	case errors.Is(reason, core.ErrOutOfBounds):
		msg = "Outside the grid"
	default:
		msg = reason.Error()
	}
	o.g.setMessage(fmt.Sprintf("%s at %s", msg, core.P(row, col)))
	o.g.log.Debug("invalid move", "row", row, "col", col, "err", reason)
}

func (o *observer) RegionRemoved(r core.Removal) {
	o.g.log.Debug("region removed",
		"origin", r.Origin.String(),
		"color", r.Color().String(),
		"size", r.Len(),
	)
}

// ConfigError serves both the engine and the tracker.
func (o *observer) ConfigError(err error) {
	var cfgErr *core.ConfigError
	if errors.As(err, &cfgErr) {
		o.g.log.Warn("level config",
			"level", o.g.level.ID,
			"code", cfgErr.Code,
			"field", cfgErr.Field,
			"index", cfgErr.Index,
			"token", cfgErr.Token,
		)
		return
	}
	o.g.log.Warn("level config", "level", o.g.level.ID, "err", err)
}

func (o *observer) GoalUpdated(goal core.Goal) {
	o.g.log.Debug("goal updated",
		"goal", goal.Type.String(),
		"remaining", goal.Remaining,
		"target", goal.Target,
	)
}

func (o *observer) LevelEnded(won bool) {
	o.g.log.Debug("goals complete", "level", o.g.level.ID, "won", won)
}
