package blast

import "github.com/vovakirdan/tile-blast/internal/games/blast/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	LevelID   string
	Level     int      // 1-indexed campaign level, endless stage otherwise
	Grid      []string // Top-first color codes, "." for empty
	GridHash  uint64
	Goals     []core.Goal
	Moves     int
	MovesLeft int // -1 for unlimited
	Score     int
	Cursor    core.Pos
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := g.levelIndex + 1
	if g.mode == ModeEndless {
		level = g.cleared + 1
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		LevelID:   g.level.ID,
		Level:     level,
		MovesLeft: g.movesLeft(),
		Score:     g.score,
		Cursor:    g.cursor,
		State:     state,
	}
	if g.session != nil {
		snap.Grid = g.session.Grid().Layout()
		snap.GridHash = g.session.Grid().Hash()
		snap.Goals = g.session.Goals()
		snap.Moves = g.session.Moves()
	}
	return snap
}
