package blast

import (
	"fmt"

	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/levels"
)

// endlessLevel generates the next random level of an endless run.
// Each stage gets harder through the difficulty manager, but the grid never
// grows beyond what the screen can show.
func (g *Game) endlessLevel() levels.Level {
	e := g.cfg.Endless
	d := g.difficulty

	length := d.GridLength(max(2, e.GridLength), g.score, g.cleared)
	if fit := g.maxBoardLength(); fit >= 2 && length > fit {
		length = fit
	}
	palette := d.PaletteSize(e.PaletteSize, core.PaletteSize, g.score, g.cleared)
	moves := d.MoveLimit(e.MoveLimit, g.score, g.cleared)
	amount := d.GoalAmount(e.GoalAmount, g.score, g.cleared)

	// Keep the goal within what a random grid can be expected to hold
	if limit := length * length * 2 / (3 * palette); amount > limit {
		amount = limit
	}
	amount = max(1, amount)

	colors := core.Palette(palette)
	target := colors[g.rng.Intn(len(colors))]

	stage := g.cleared + 1
	return levels.Level{
		ID:   fmt.Sprintf("endless-%02d", stage),
		Name: fmt.Sprintf("Stage %d", stage),
		Spec: core.GridSpec{
			Length:      length,
			PaletteSize: palette,
			Random:      true,
		},
		Goals: []core.GoalDecl{
			{Type: string(target.Char()), Amount: amount},
		},
		MoveLimit: moves,
	}
}
