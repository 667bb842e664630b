// Package config provides YAML-based configuration loading and difficulty
// management for Tile Blast.
package config

// BlastConfig contains all tunable settings of the game.
type BlastConfig struct {
	Scoring    ScoringConfig    `yaml:"scoring"`
	Endless    EndlessConfig    `yaml:"endless"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScoringConfig defines how cleared regions turn into points.
type ScoringConfig struct {
	PointsPerTile   int `yaml:"points_per_tile"`
	BonusThreshold  int `yaml:"bonus_threshold"`   // Region size from which the bonus applies
	BonusPerTile    int `yaml:"bonus_per_tile"`    // Extra points per tile of a region at or above the threshold
	LevelClearBonus int `yaml:"level_clear_bonus"` // Flat bonus for winning a level
	MoveBonus       int `yaml:"move_bonus"`        // Points per unused move on a win
}

// EndlessConfig defines the random levels of endless mode.
type EndlessConfig struct {
	GridLength  int `yaml:"grid_length"`
	PaletteSize int `yaml:"palette_size"`
	MoveLimit   int `yaml:"move_limit"`  // 0 = unlimited
	GoalAmount  int `yaml:"goal_amount"` // Tiles to collect per level
}

// TimingConfig defines how long transient messages stay on screen.
type TimingConfig struct {
	LevelClearTicks int `yaml:"level_clear_ticks"` // Banner duration before the next level
	MessageTicks    int `yaml:"message_ticks"`     // Status line duration (invalid taps)
}

// DifficultyConfig defines how endless mode gets harder as the run goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Levels cleared or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	ExtraLength   int `yaml:"extra_length"`   // Cells added to the grid side
	ExtraColors   int `yaml:"extra_colors"`   // Colors added to the palette
	MoveReduction int `yaml:"move_reduction"` // Moves removed from the limit
	GoalIncrease  int `yaml:"goal_increase"`  // Tiles added to the goal
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Unknown values return DifficultyNormal and false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
