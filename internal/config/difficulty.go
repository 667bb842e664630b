package config

import "math"

// DifficultyManager derives endless-mode level parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the run
// score and the number of levels cleared so far.
func (d *DifficultyManager) Level(score, cleared int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "levels":
		progress = float64(cleared) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GridLength returns the grid side for the next level.
func (d *DifficultyManager) GridLength(base, score, cleared int) int {
	return base + d.scaled(d.cfg.Scaling.ExtraLength, score, cleared)
}

// PaletteSize returns the palette size for the next level, capped at limit.
func (d *DifficultyManager) PaletteSize(base, limit, score, cleared int) int {
	n := base + d.scaled(d.cfg.Scaling.ExtraColors, score, cleared)
	if n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// MoveLimit returns the move limit for the next level.
// A base of 0 means unlimited and is never reduced.
func (d *DifficultyManager) MoveLimit(base, score, cleared int) int {
	if base <= 0 {
		return 0
	}
	floor := 3 // Minimum playable limit
	if base < floor {
		floor = base
	}
	n := base - d.scaled(d.cfg.Scaling.MoveReduction, score, cleared)
	if n < floor {
		n = floor
	}
	return n
}

// GoalAmount returns the goal amount for the next level.
func (d *DifficultyManager) GoalAmount(base, score, cleared int) int {
	return base + d.scaled(d.cfg.Scaling.GoalIncrease, score, cleared)
}

func (d *DifficultyManager) scaled(amount, score, cleared int) int {
	return int(math.Round(d.Level(score, cleared) * float64(amount)))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
