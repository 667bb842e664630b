package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	GridLength   int        `yaml:"grid_length"`
	ColorCount   int        `yaml:"color_count,omitempty"`
	RandomStart  bool       `yaml:"random_start,omitempty"`
	StartingGrid []string   `yaml:"starting_grid,omitempty"`
	Rows         []string   `yaml:"rows,omitempty"` // Alternative to starting_grid: one string per row, top first
	Goals        []YAMLGoal `yaml:"goals"`
	MoveLimit    int        `yaml:"move_limit,omitempty"`
}

// YAMLGoal represents a single goal in YAML format.
type YAMLGoal struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:           yl.ID,
		Name:         yl.Name,
		GridLength:   yl.GridLength,
		ColorCount:   yl.ColorCount,
		RandomStart:  yl.RandomStart,
		StartingGrid: yl.StartingGrid,
		MoveLimit:    yl.MoveLimit,
	}
	if len(level.StartingGrid) == 0 && len(yl.Rows) > 0 {
		level.StartingGrid = expandRows(yl.Rows)
	}

	for _, g := range yl.Goals {
		level.Goals = append(level.Goals, Goal{Type: g.Type, Amount: g.Amount})
	}

	return level, nil
}
