// Package blast provides Tile Blast, a tap-to-clear tile puzzle for the terminal.
package blast

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-blast/internal/config"
	platformcore "github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/levels"
	"github.com/vovakirdan/tile-blast/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game IDs used for registration and score storage.
const (
	IDCampaign = "blast"
	IDEndless  = "blast_endless"
)

// maxDeals is how often a random grid is redrawn when it starts without moves.
const maxDeals = 5

// Game implements Tile Blast.
type Game struct {
	mode   Mode
	rng    *rand.Rand
	cfg    config.BlastConfig
	loader *levels.Loader
	log    *log.Logger
	obs    *observer

	difficulty *config.DifficultyManager

	// Campaign
	levels     []levels.Level
	levelIndex int
	startLevel int // 1-indexed level for the next Reset, 0 for the first
	retryIndex int // Level to resume from after a loss, -1 for none

	// Current level
	level      levels.Level
	session    *core.Session
	cursor     core.Pos
	levelScore int

	// Run
	tick     uint64
	score    int
	cleared  int
	finished []platformcore.LevelResult

	// Screen
	screenW int
	screenH int
	layout  boardLayout

	// Status
	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	bannerTicks  int
	lastBonus    int
	lossReason   string
	message      string
	messageTicks int
}

// Package-level settings picked up by New and NewEndless.
// SSH sessions create games concurrently, so access goes through settingsMu.
var (
	settingsMu         sync.Mutex
	selectedStartLevel int
	selectedConfig     = config.DefaultBlastConfig()
	selectedLoader     *levels.Loader
	logger             = log.New(io.Discard)
)

// SetStartLevel sets the campaign starting level (1-indexed) for the next
// game created. 0 means start from beginning.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return selectedStartLevel
}

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BlastConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedConfig = cfg
}

// SetLevelLoader sets where campaign levels come from. nil means built-in levels.
func SetLevelLoader(l *levels.Loader) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedLoader = l
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// New creates a new campaign game.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates a new endless game.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

func newGame(mode Mode) *Game {
	settingsMu.Lock()
	g := &Game{
		mode:       mode,
		cfg:        selectedConfig,
		loader:     selectedLoader,
		startLevel: selectedStartLevel,
		retryIndex: -1,
	}
	selectedStartLevel = 0 // Reset after use
	base := logger
	settingsMu.Unlock()

	if g.loader == nil {
		g.loader = levels.Builtin()
	}
	g.log = base.With("game", g.ID())
	g.obs = &observer{g: g}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tile Blast (Endless)"
	}
	return "Tile Blast"
}

// Reset initializes or restarts the game.
// After a lost campaign level, the run restarts at that level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.cleared = 0
	g.finished = nil
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.bannerTicks = 0
	g.lossReason = ""
	g.message = ""
	g.messageTicks = 0
	g.session = nil
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.mode == ModeEndless {
		g.beginLevel()
		return
	}

	if g.levels == nil {
		all, err := g.loader.LoadAll()
		if err != nil {
			g.log.Error("loading levels", "root", g.loader.Root, "err", err)
		}
		g.levels = all
	}
	if len(g.levels) == 0 {
		g.log.Warn("no playable levels", "root", g.loader.Root)
		g.gameOver = true
		g.lossReason = "No levels found"
		return
	}

	switch {
	case g.retryIndex >= 0 && g.retryIndex < len(g.levels):
		g.levelIndex = g.retryIndex
	case g.startLevel > 0 && g.startLevel <= len(g.levels):
		g.levelIndex = g.startLevel - 1
	default:
		g.levelIndex = 0
	}
	g.retryIndex = -1
	g.startLevel = 0

	g.beginLevel()
}

// StartAt makes the next Reset begin the campaign at level (1-indexed).
func (g *Game) StartAt(level int) {
	g.startLevel = level
	g.retryIndex = -1
}

// CampaignLevels returns the playable levels of the configured level source.
func CampaignLevels() ([]levels.Level, error) {
	settingsMu.Lock()
	loader := selectedLoader
	settingsMu.Unlock()
	if loader == nil {
		loader = levels.Builtin()
	}
	return loader.LoadAll()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// beginLevel builds the session for the current level.
func (g *Game) beginLevel() {
	if g.mode == ModeEndless {
		g.level = g.endlessLevel()
	} else {
		g.level = g.levels[g.levelIndex]
	}
	g.levelScore = 0
	g.levelCleared = false
	g.bannerTicks = 0

	var err error
	for deal := 0; deal < maxDeals; deal++ {
		g.session, err = core.NewSession(g.level.LevelSpec(), g.rng, g.obs, g.obs)
		if err != nil || !g.level.Spec.Random || !g.session.Stuck() {
			break
		}
		g.log.Debug("redealing stuck grid", "level", g.level.ID, "deal", deal+1)
	}
	if err != nil {
		g.log.Error("cannot start level", "level", g.level.ID, "err", err)
		g.session = nil
		g.gameOver = true
		g.lossReason = "Level failed to load"
		return
	}

	length := g.level.Spec.Length
	g.cursor = core.P(length-1, 0)
	g.calculateLayout()

	g.log.Info("level started",
		"level", g.level.ID,
		"length", length,
		"move_limit", g.level.MoveLimit,
		"goals", len(g.session.Goals()),
	)

	if g.session.Stuck() {
		g.loseLevel("No moves left")
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.bannerTicks++
		if g.bannerTicks >= g.cfg.Timing.LevelClearTicks {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.session == nil {
		return g.result()
	}

	g.moveCursor(in)

	switch {
	case in.Has(platformcore.ActionTap):
		if pos, ok := g.layout.cellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = pos
			g.tap(pos)
		}
	case in.Has(platformcore.ActionConfirm):
		g.tap(g.cursor)
	}

	return g.result()
}

// moveCursor applies arrow input. Up is towards higher rows.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	last := g.level.Spec.Length - 1
	if in.Has(platformcore.ActionUp) {
		g.cursor.Row = platformcore.Clamp(g.cursor.Row+1, 0, last)
	}
	if in.Has(platformcore.ActionDown) {
		g.cursor.Row = platformcore.Clamp(g.cursor.Row-1, 0, last)
	}
	if in.Has(platformcore.ActionLeft) {
		g.cursor.Col = platformcore.Clamp(g.cursor.Col-1, 0, last)
	}
	if in.Has(platformcore.ActionRight) {
		g.cursor.Col = platformcore.Clamp(g.cursor.Col+1, 0, last)
	}
}

// tap forwards a tap to the session and settles the level outcome.
// A winning tap wins even if it was the last allowed move.
func (g *Game) tap(pos core.Pos) {
	removal, err := g.session.Tap(pos.Row, pos.Col)
	if err != nil {
		return
	}

	points := regionPoints(g.cfg.Scoring, removal.Len())
	g.levelScore += points
	g.score += points

	switch {
	case g.session.Won():
		g.winLevel()
	case g.level.MoveLimit > 0 && g.session.Moves() >= g.level.MoveLimit:
		g.loseLevel("Out of moves")
	case g.session.Stuck():
		g.loseLevel("No moves left")
	}
}

// movesLeft returns the unused moves, or -1 for unlimited.
func (g *Game) movesLeft() int {
	if g.level.MoveLimit <= 0 || g.session == nil {
		return -1
	}
	return platformcore.Max(0, g.level.MoveLimit-g.session.Moves())
}

func (g *Game) winLevel() {
	g.lastBonus = levelBonus(g.cfg.Scoring, g.movesLeft())
	g.levelScore += g.lastBonus
	g.score += g.lastBonus
	g.cleared++
	g.record(true)

	g.levelCleared = true
	g.bannerTicks = 0
}

func (g *Game) loseLevel(reason string) {
	g.record(false)
	g.gameOver = true
	g.lossReason = reason
	if g.mode == ModeCampaign {
		g.retryIndex = g.levelIndex
	}
}

// advanceLevel moves on after the level-clear banner.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.bannerTicks = 0

	if g.mode == ModeCampaign {
		g.levelIndex++
		if g.levelIndex >= len(g.levels) {
			g.won = true
			g.gameOver = true
			g.log.Info("campaign complete", "score", g.score)
			return
		}
	}
	g.beginLevel()
}

// record queues a finished level for the platform to persist.
func (g *Game) record(won bool) {
	res := platformcore.LevelResult{
		GameID:  g.ID(),
		LevelID: g.level.ID,
		Won:     won,
		Moves:   g.session.Moves(),
		Score:   g.levelScore,
	}
	g.finished = append(g.finished, res)
	g.log.Info("level finished",
		"level", res.LevelID,
		"won", res.Won,
		"moves", res.Moves,
		"score", res.Score,
	)
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = g.cfg.Timing.MessageTicks
}

// result drains finished levels into a StepResult.
func (g *Game) result() platformcore.StepResult {
	res := platformcore.StepResult{
		State:    g.State(),
		Finished: g.finished,
	}
	g.finished = nil
	return res
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL: Move | Enter/Space/Click: Tap | P: Pause | R: Restart | Q: Quit"
}
