package config

import (
	_ "embed"
)

//go:embed defaults/blast.yaml
var defaultBlastYAML []byte

// DefaultBlastConfig returns the built-in configuration.
// It matches defaults/blast.yaml.
func DefaultBlastConfig() BlastConfig {
	return BlastConfig{
		Scoring: ScoringConfig{
			PointsPerTile:   10,
			BonusThreshold:  5,
			BonusPerTile:    5,
			LevelClearBonus: 100,
			MoveBonus:       20,
		},
		Endless: EndlessConfig{
			GridLength:  8,
			PaletteSize: 3,
			MoveLimit:   20,
			GoalAmount:  25,
		},
		Timing: TimingConfig{
			LevelClearTicks: 60,
			MessageTicks:    45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ExtraLength:   2,
				ExtraColors:   1,
				MoveReduction: 6,
				GoalIncrease:  20,
			},
		},
	}
}
