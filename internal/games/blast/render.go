package blast

import (
	"fmt"

	platformcore "github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
)

// tileColors maps tile colors to screen colors.
var tileColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorYellow: platformcore.ColorYellow,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	if g.session == nil {
		g.drawOverlay(dst, g.screenW/2, g.screenH/2, g.lossReason, "Press Q to quit")
		return
	}

	g.renderBoard(dst)
	g.renderPanel(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

// renderHUD draws the title line, the status line and the controls footer.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	var title string
	if g.mode == ModeEndless {
		title = fmt.Sprintf(" %s | Score: %d | %s", g.Title(), g.score, g.level.Title())
	} else if len(g.levels) > 0 {
		title = fmt.Sprintf(" %s | Score: %d | Level %d/%d: %s",
			g.Title(), g.score, g.levelIndex+1, len(g.levels), g.level.Title())
	} else {
		title = " " + g.Title()
	}
	dst.DrawTextWithColor(0, 0, title, platformcore.ColorCyan)

	if g.message != "" {
		dst.DrawTextWithColor(1, 1, g.message, platformcore.ColorYellow)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─', platformcore.ColorGray)
	dst.DrawTextWithColor(0, g.screenH-1, " "+g.Controls(), platformcore.ColorGray)
}

// renderBoard draws the frame, the tiles and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	dst.DrawBox(g.layout.box, platformcore.ColorGray)

	grid := g.session.Grid()
	for _, cell := range grid.Cells() {
		r := g.layout.cellRect(cell.Pos())
		isCursor := cell.Pos() == g.cursor && !g.gameOver

		if cell.IsEmpty() {
			fill := platformcore.Cell{Rune: ' '}
			if isCursor {
				fill = platformcore.Cell{Rune: '░', Color: platformcore.ColorBrightWhite}
			}
			dst.DrawRect(r, fill)
			dst.SetWithColor(r.X+r.W/2, r.Y+r.H/2, '·', platformcore.ColorGray)
			continue
		}

		fill := platformcore.Cell{Rune: '█', Color: tileColors[cell.Color]}
		if isCursor {
			fill.Rune = '▓'
			fill.Attr = platformcore.AttrBold
		}
		dst.DrawRect(r, fill)
	}
}

// renderPanel draws goals, moves and run progress right of the board.
func (g *Game) renderPanel(dst *platformcore.Screen) {
	x := g.layout.box.Right() + panelGap
	y := hudHeight

	dst.DrawTextWithColor(x, y, "Goals", platformcore.ColorBrightWhite)
	y++

	goals := g.session.Goals()
	if len(goals) == 0 {
		dst.DrawTextWithColor(x, y, "  (none)", platformcore.ColorGray)
		y++
	}
	for _, goal := range goals {
		swatch := platformcore.ColorWhite
		if c, ok := tileColors[goal.Type.Color()]; ok {
			swatch = c
		}
		dst.SetWithColor(x, y, '■', swatch)

		label := fmt.Sprintf(" %-7s %3d/%-3d", goalLabel(goal.Type), goal.Target-goal.Remaining, goal.Target)
		color := platformcore.ColorDefault
		if goal.Done() {
			label += " ✓"
			color = platformcore.ColorGreen
		}
		dst.DrawTextWithColor(x+1, y, label, color)
		y++
	}

	y++
	if left := g.movesLeft(); left >= 0 {
		color := platformcore.ColorDefault
		if left <= 2 {
			color = platformcore.ColorRed
		}
		dst.DrawTextWithColor(x, y, fmt.Sprintf("Moves left: %d", left), color)
	} else {
		dst.DrawTextWithColor(x, y, fmt.Sprintf("Moves: %d", g.session.Moves()), platformcore.ColorDefault)
	}
	y++
	dst.DrawTextWithColor(x, y, fmt.Sprintf("Level score: %d", g.levelScore), platformcore.ColorDefault)
	y++

	if g.mode == ModeEndless {
		dst.DrawTextWithColor(x, y, fmt.Sprintf("Cleared: %d", g.cleared), platformcore.ColorDefault)
	}
}

func goalLabel(t core.GoalType) string {
	switch t {
	case core.GoalCollectAny:
		return "Any"
	case core.GoalNone:
		return "?"
	default:
		return t.Color().String()
	}
}

// renderOverlays draws game state overlays centered on the board.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	box := g.layout.box
	cx := box.X + box.W/2
	cy := box.Y + box.H/2

	switch {
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.levelCleared:
		g.drawOverlay(dst, cx, cy, "LEVEL CLEAR!", fmt.Sprintf("Bonus +%d", g.lastBonus))
	case g.won:
		g.drawOverlay(dst, cx, cy, "ALL LEVELS CLEARED!", fmt.Sprintf("Score: %d", g.score), "Press R to play again")
	case g.gameOver:
		hint := "Press R to retry"
		if g.mode == ModeEndless {
			hint = "Press R for a new run"
		}
		g.drawOverlay(dst, cx, cy, "GAME OVER", g.lossReason, hint)
	}
}

// drawOverlay draws a boxed message centered at (cx, cy).
func (g *Game) drawOverlay(dst *platformcore.Screen, cx, cy int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, len([]rune(line)))
	}

	box := platformcore.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = cx - box.W/2
	box.Y = cy - box.H/2

	dst.DrawRect(box, platformcore.Cell{Rune: ' '})
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	for i, line := range lines {
		x := cx - len([]rune(line))/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, platformcore.ColorBrightWhite)
	}
}
