package blast

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-blast/internal/config"
	platformcore "github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/levels"
)

const (
	// Every red tile is one region, so the first tap wins.
	winLevel = `id: t1_win
grid_length: 3
rows: [RRR, RRR, GRR]
goals:
  - {type: R, amount: 8}
move_limit: 3
`
	// Clearing the red pair uses the only move.
	limitLevel = `id: t2_limit
grid_length: 3
rows: [RRB, GGB, YYR]
goals:
  - {type: R, amount: 10}
move_limit: 1
`
	// After the red pair goes, nothing touches.
	stuckLevel = `id: t3_stuck
grid_length: 2
rows: [RR, GB]
goals:
  - {type: G, amount: 1}
`
	deadLevel = `id: t4_dead
grid_length: 2
rows: [RG, GR]
goals:
  - {type: R, amount: 1}
`
)

var testRuntime = platformcore.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 30,
	Seed:     42,
}

// newTestGame creates a campaign over the given level files.
func newTestGame(t *testing.T, files map[string]string) *Game {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	g := New()
	g.cfg = config.DefaultBlastConfig()
	g.loader = levels.NewFSLoader(fsys, "test")
	g.Reset(testRuntime)
	return g
}

func confirm() platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionConfirm)
	return in
}

func press(a platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	in.Set(a)
	return in
}

// skipBanner steps through the level clear banner.
func skipBanner(g *Game) platformcore.StepResult {
	var res platformcore.StepResult
	for i := 0; i < g.cfg.Timing.LevelClearTicks; i++ {
		res = g.Step(platformcore.NewInputFrame())
	}
	return res
}

func TestResetStartsFirstLevel(t *testing.T) {
	g := newTestGame(t, map[string]string{
		"b.yaml": limitLevel,
		"a.yaml": winLevel,
	})

	require.Len(t, g.levels, 2)
	assert.Equal(t, "t1_win", g.level.ID)
	assert.Equal(t, core.P(2, 0), g.cursor, "cursor starts top left")
	assert.False(t, g.gameOver)
	assert.False(t, g.tooSmall)
	assert.Equal(t, 3, g.movesLeft())
}

func TestConfirmTapWinsLevel(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})

	res := g.Step(confirm())

	// 8 tiles: 80 base + 40 region bonus, then 100 clear bonus + 2 unused moves
	want := []platformcore.LevelResult{{
		GameID:  IDCampaign,
		LevelID: "t1_win",
		Won:     true,
		Moves:   1,
		Score:   80 + 40 + 100 + 40,
	}}
	if diff := cmp.Diff(want, res.Finished); diff != "" {
		t.Errorf("finished levels mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, g.levelCleared)
	assert.Equal(t, 260, res.State.Score)
	assert.True(t, res.State.Paused, "banner pauses play")
	assert.Equal(t, "...\n...\nG..", g.session.Grid().String())

	// Finished results are handed out once
	res = g.Step(platformcore.NewInputFrame())
	assert.Empty(t, res.Finished)
}

func TestCampaignAdvancesAfterBanner(t *testing.T) {
	g := newTestGame(t, map[string]string{
		"a.yaml": winLevel,
		"b.yaml": limitLevel,
	})

	g.Step(confirm())
	require.True(t, g.levelCleared)

	skipBanner(g)

	assert.False(t, g.levelCleared)
	assert.Equal(t, 1, g.levelIndex)
	assert.Equal(t, "t2_limit", g.level.ID)
	assert.Equal(t, 0, g.session.Moves())
	assert.Equal(t, 260, g.score, "run score carries over")
	assert.Equal(t, 0, g.levelScore)
}

func TestCampaignComplete(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})

	g.Step(confirm())
	res := skipBanner(g)

	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, StateWin, g.Snapshot().State)
}

func TestMoveLimitLosesLevel(t *testing.T) {
	g := newTestGame(t, map[string]string{"b.yaml": limitLevel})

	res := g.Step(confirm())

	require.True(t, g.gameOver)
	assert.False(t, g.won)
	assert.Equal(t, "Out of moves", g.lossReason)
	require.Len(t, res.Finished, 1)
	assert.False(t, res.Finished[0].Won)
	assert.Equal(t, 1, res.Finished[0].Moves)
	assert.Equal(t, 0, g.movesLeft())

	// Input is ignored once the level is over
	before := g.session.Grid().Hash()
	g.Step(press(platformcore.ActionDown))
	g.Step(confirm())
	assert.Equal(t, before, g.session.Grid().Hash())
}

func TestStuckBoardLosesLevel(t *testing.T) {
	g := newTestGame(t, map[string]string{"c.yaml": stuckLevel})

	g.Step(confirm())

	assert.True(t, g.gameOver)
	assert.Equal(t, "No moves left", g.lossReason)
	assert.Equal(t, "..\nGB", g.session.Grid().String())
}

func TestDeadBoardLosesOnStart(t *testing.T) {
	g := newTestGame(t, map[string]string{"d.yaml": deadLevel})

	assert.True(t, g.gameOver)
	assert.Equal(t, "No moves left", g.lossReason)

	res := g.Step(platformcore.NewInputFrame())
	require.Len(t, res.Finished, 1)
	assert.Equal(t, 0, res.Finished[0].Moves)
}

func TestRetryResumesLostLevel(t *testing.T) {
	g := newTestGame(t, map[string]string{
		"a.yaml": winLevel,
		"b.yaml": limitLevel,
	})

	g.Step(confirm())
	skipBanner(g)
	g.Step(confirm())
	require.True(t, g.gameOver)
	require.Equal(t, "t2_limit", g.level.ID)

	g.Reset(testRuntime)

	assert.False(t, g.gameOver)
	assert.Equal(t, 1, g.levelIndex)
	assert.Equal(t, "t2_limit", g.level.ID)
	assert.Equal(t, 0, g.score)

	// A second reset without a loss starts over
	g.Reset(testRuntime)
	assert.Equal(t, 0, g.levelIndex)
}

func TestStartLevelSetting(t *testing.T) {
	SetStartLevel(2)
	t.Cleanup(func() { SetStartLevel(0) })

	g := newTestGame(t, map[string]string{
		"a.yaml": winLevel,
		"b.yaml": limitLevel,
	})

	assert.Equal(t, "t2_limit", g.level.ID)
	assert.Equal(t, 0, GetStartLevel(), "start level is used once")
}

func TestStartAt(t *testing.T) {
	g := newTestGame(t, map[string]string{
		"a.yaml": winLevel,
		"b.yaml": limitLevel,
	})

	g.StartAt(2)
	g.Reset(testRuntime)
	assert.Equal(t, "t2_limit", g.level.ID)

	// Out of range falls back to the first level
	g.StartAt(9)
	g.Reset(testRuntime)
	assert.Equal(t, "t1_win", g.level.ID)
}

func TestInvalidTapSetsMessage(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})

	g.Step(press(platformcore.ActionDown))
	g.Step(press(platformcore.ActionDown))
	require.Equal(t, core.P(0, 0), g.cursor)

	g.Step(confirm())

	assert.Equal(t, 0, g.session.Moves(), "rejected taps are not moves")
	assert.Contains(t, g.message, "No matching neighbor")
	assert.False(t, g.gameOver)

	for i := 0; i < g.cfg.Timing.MessageTicks; i++ {
		g.Step(platformcore.NewInputFrame())
	}
	assert.Empty(t, g.message)
}

func TestCursorClampsToGrid(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})

	g.Step(press(platformcore.ActionUp))
	g.Step(press(platformcore.ActionLeft))
	assert.Equal(t, core.P(2, 0), g.cursor)

	for i := 0; i < 5; i++ {
		g.Step(press(platformcore.ActionRight))
		g.Step(press(platformcore.ActionDown))
	}
	assert.Equal(t, core.P(0, 2), g.cursor)
}

func TestPointerTap(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})

	// Outside the board does nothing
	in := platformcore.NewInputFrame()
	in.SetTap(0, 0)
	g.Step(in)
	assert.Equal(t, 0, g.session.Moves())

	r := g.layout.cellRect(core.P(1, 1))
	in = platformcore.NewInputFrame()
	in.SetTap(r.X, r.Y)
	g.Step(in)

	assert.Equal(t, core.P(1, 1), g.cursor)
	assert.Equal(t, 1, g.session.Moves())
	assert.True(t, g.levelCleared)
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})

	g.Step(press(platformcore.ActionPause))
	require.True(t, g.paused)

	g.Step(confirm())
	assert.Equal(t, 0, g.session.Moves())
	assert.Equal(t, StatePaused, g.Snapshot().State)

	g.Step(press(platformcore.ActionPause))
	g.Step(confirm())
	assert.Equal(t, 1, g.session.Moves())
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, map[string]string{"b.yaml": limitLevel, "c.yaml": stuckLevel})
	require.Equal(t, "t2_limit", g.level.ID)

	g.Resize(20, 10)
	require.True(t, g.tooSmall)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Step(confirm())
	assert.Equal(t, 0, g.session.Moves(), "no play while too small")

	g.Resize(100, 30)
	assert.False(t, g.tooSmall)
	assert.Equal(t, "t2_limit", g.level.ID)
	assert.Equal(t, core.P(2, 0), g.cursor)
}

func TestLayoutShrinksWithScreen(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})
	assert.Equal(t, 6, g.layout.cellW)

	g.Resize(40, 12)
	require.False(t, g.tooSmall)
	assert.Equal(t, 3, g.layout.cellW)
	assert.Equal(t, 1, g.layout.cellH)
}

func TestCellAtMatchesCellRect(t *testing.T) {
	for _, size := range []struct{ w, h int }{{80, 24}, {40, 12}} {
		g := newTestGame(t, map[string]string{"a.yaml": winLevel})
		g.Resize(size.w, size.h)
		require.False(t, g.tooSmall)

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				pos := core.P(row, col)
				r := g.layout.cellRect(pos)
				for _, pt := range [][2]int{{r.X, r.Y}, {r.Right() - 1, r.Bottom() - 1}} {
					got, ok := g.layout.cellAt(pt[0], pt[1])
					if !ok || got != pos {
						t.Errorf("%dx%d: cellAt(%d, %d) = %v, %v; want %v",
							size.w, size.h, pt[0], pt[1], got, ok, pos)
					}
				}
			}
		}

		box := g.layout.box
		if _, ok := g.layout.cellAt(box.X, box.Y); ok {
			t.Errorf("%dx%d: border should not map to a cell", size.w, size.h)
		}
		if _, ok := g.layout.cellAt(box.Right(), box.Bottom()); ok {
			t.Errorf("%dx%d: point past the board should not map to a cell", size.w, size.h)
		}
	}
}

func TestNoLevels(t *testing.T) {
	g := newTestGame(t, map[string]string{"notes.txt": "nothing here"})

	assert.True(t, g.gameOver)
	assert.Equal(t, "No levels found", g.lossReason)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "No levels found")
}

func TestRender(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), " Tile Blast | Score: 0 | Level 1/1: t1_win"))
	assert.Contains(t, screen.String(), "Goals")
	assert.Contains(t, screen.String(), "Moves left: 3")

	r := g.layout.cellRect(core.P(0, 0))
	cell := screen.GetCell(r.X, r.Y)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, platformcore.ColorGreen, cell.Color)

	cur := g.layout.cellRect(g.cursor)
	assert.Equal(t, '▓', screen.Get(cur.X, cur.Y))

	g.Step(confirm())
	g.Render(screen)
	assert.Contains(t, screen.String(), "LEVEL CLEAR!")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, map[string]string{"a.yaml": winLevel})
	g.Resize(20, 10)

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestDeterministicEndless(t *testing.T) {
	play := func() []Snapshot {
		g := NewEndless()
		g.cfg = config.DefaultBlastConfig()
		g.Reset(testRuntime)

		snaps := []Snapshot{g.Snapshot()}
		for _, a := range []platformcore.Action{
			platformcore.ActionConfirm,
			platformcore.ActionRight,
			platformcore.ActionConfirm,
			platformcore.ActionDown,
			platformcore.ActionConfirm,
		} {
			g.Step(press(a))
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	first := play()
	second := play()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different runs (-first +second):\n%s", diff)
	}
	assert.Equal(t, "endless", first[0].Mode)
	assert.Equal(t, "endless-01", first[0].LevelID)
	assert.Len(t, first[0].Grid, 64)
}

func TestEndlessLevelGetsHarder(t *testing.T) {
	g := NewEndless()
	g.cfg = config.DefaultBlastConfig()
	g.Reset(testRuntime)

	first := g.endlessLevel()
	assert.Equal(t, "endless-01", first.ID)
	assert.Equal(t, 8, first.Spec.Length)
	assert.Equal(t, 3, first.Spec.PaletteSize)
	assert.True(t, first.Spec.Random)
	assert.Equal(t, 20, first.MoveLimit)
	require.Len(t, first.Goals, 1)
	assert.Equal(t, 14, first.Goals[0].Amount, "goal is capped by grid size")

	g.cleared = 10
	hard := g.endlessLevel()
	assert.Equal(t, "endless-11", hard.ID)
	assert.Equal(t, "Stage 11", hard.Name)
	assert.Equal(t, 10, hard.Spec.Length)
	assert.Equal(t, 4, hard.Spec.PaletteSize)
	assert.Equal(t, 14, hard.MoveLimit)
	assert.Equal(t, 16, hard.Goals[0].Amount)

	gt, ok := core.ParseGoalType(hard.Goals[0].Type)
	require.True(t, ok)
	assert.Contains(t, core.Palette(4), gt.Color())
}

func TestEndlessGridFitsScreen(t *testing.T) {
	small := testRuntime
	small.ScreenW = 48
	small.ScreenH = 16

	g := NewEndless()
	g.cfg = config.DefaultBlastConfig()
	g.Reset(small)

	require.NotNil(t, g.session)
	assert.Equal(t, 8, g.level.Spec.Length)
	assert.False(t, g.tooSmall)

	// Difficulty asks for 10x10, which does not fit
	g.cleared = 10
	g.beginLevel()

	require.NotNil(t, g.session)
	assert.Equal(t, 9, g.level.Spec.Length)
	assert.Equal(t, 9, g.maxBoardLength())
	assert.False(t, g.tooSmall, "grid should be capped to the screen")
}

func TestEndlessLossStartsNewRun(t *testing.T) {
	g := NewEndless()
	g.cfg = config.DefaultBlastConfig()
	g.Reset(testRuntime)

	g.loseLevel("Out of moves")
	require.True(t, g.gameOver)
	assert.Equal(t, -1, g.retryIndex)

	g.Reset(testRuntime)
	assert.False(t, g.gameOver)
	assert.Equal(t, "endless-01", g.level.ID)
}

func TestScoring(t *testing.T) {
	s := config.DefaultBlastConfig().Scoring

	tests := []struct {
		tiles int
		want  int
	}{
		{2, 20},
		{4, 40},
		{5, 75},
		{8, 120},
	}
	for _, tt := range tests {
		if got := regionPoints(s, tt.tiles); got != tt.want {
			t.Errorf("regionPoints(%d) = %d, want %d", tt.tiles, got, tt.want)
		}
	}

	if got := levelBonus(s, 3); got != 160 {
		t.Errorf("levelBonus(3) = %d, want 160", got)
	}
	if got := levelBonus(s, -1); got != 100 {
		t.Errorf("levelBonus(unlimited) = %d, want 100", got)
	}
}
