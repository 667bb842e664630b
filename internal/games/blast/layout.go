package blast

import (
	platformcore "github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
)

const (
	hudHeight    = 3  // Title, status line, separator
	footerHeight = 1  // Controls hint
	panelWidth   = 24 // Goals panel right of the board
	panelGap     = 2
)

// cellSizes are tried largest first. Each size includes a one-column gap,
// and a one-row gap when taller than one line.
var cellSizes = []struct{ w, h int }{
	{6, 3},
	{4, 2},
	{3, 1},
	{2, 1},
}

// boardLayout maps grid positions to screen rectangles and back.
// Grid row 0 is drawn at the bottom.
type boardLayout struct {
	box     platformcore.Rect // Board frame including border
	originX int               // Top-left of the first cell
	originY int
	cellW   int
	cellH   int
	length  int
}

// cellRect returns the screen area of the tile at pos, excluding gaps.
func (l boardLayout) cellRect(pos core.Pos) platformcore.Rect {
	h := l.cellH
	if h > 1 {
		h--
	}
	return platformcore.Rect{
		X: l.originX + pos.Col*l.cellW,
		Y: l.originY + (l.length-1-pos.Row)*l.cellH,
		W: l.cellW - 1,
		H: h,
	}
}

// cellAt returns the grid position under a screen point.
// Gaps belong to the cell on their left or above.
func (l boardLayout) cellAt(x, y int) (core.Pos, bool) {
	if l.length == 0 || l.cellW == 0 || l.cellH == 0 {
		return core.Pos{}, false
	}
	dx := x - l.originX
	dy := y - l.originY
	if dx < 0 || dy < 0 {
		return core.Pos{}, false
	}
	col := dx / l.cellW
	fromTop := dy / l.cellH
	if col >= l.length || fromTop >= l.length {
		return core.Pos{}, false
	}
	return core.P(l.length-1-fromTop, col), true
}

// layoutBudget returns the screen space left for the board frame.
func (g *Game) layoutBudget() (w, h int) {
	return g.screenW - panelWidth - panelGap - 2, g.screenH - hudHeight - footerHeight
}

// maxBoardLength returns the largest grid side that fits the screen with the
// smallest cell size, or 0 if not even that fits.
func (g *Game) maxBoardLength() int {
	availW, availH := g.layoutBudget()
	size := cellSizes[len(cellSizes)-1]

	byW := (availW - 1) / size.w
	byH := (availH - 2) / size.h
	if size.h > 1 {
		byH = (availH - 1) / size.h
	}
	return platformcore.Max(0, platformcore.Min(byW, byH))
}

// calculateLayout picks the largest cell size that fits the screen.
func (g *Game) calculateLayout() {
	g.layout = boardLayout{}
	g.tooSmall = false
	if g.session == nil {
		return
	}

	length := g.level.Spec.Length
	availW, availH := g.layoutBudget()

	for _, size := range cellSizes {
		contentH := length * size.h
		if size.h > 1 {
			contentH--
		}
		boxW := length*size.w + 1
		boxH := contentH + 2
		if boxW > availW || boxH > availH {
			continue
		}

		x := platformcore.Max(1, (g.screenW-panelWidth-panelGap-boxW)/2)
		g.layout = boardLayout{
			box:     platformcore.NewRect(x, hudHeight, boxW, boxH),
			originX: x + 1,
			originY: hudHeight + 1,
			cellW:   size.w,
			cellH:   size.h,
			length:  length,
		}
		return
	}

	g.tooSmall = true
}
