package formats

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// HCLLevel represents the HCL structure for a level file:
//
//	id          = "lvl07"
//	name        = "Crossroads"
//	grid_length = 4
//	rows        = ["RRGB", "RGGB", "YYGB", "YRRB"]
//	move_limit  = 6
//
//	goal {
//	  type   = "G"
//	  amount = 4
//	}
type HCLLevel struct {
	ID           string    `hcl:"id"`
	Name         string    `hcl:"name,optional"`
	GridLength   int       `hcl:"grid_length"`
	ColorCount   int       `hcl:"color_count,optional"`
	RandomStart  bool      `hcl:"random_start,optional"`
	StartingGrid []string  `hcl:"starting_grid,optional"`
	Rows         []string  `hcl:"rows,optional"`
	MoveLimit    int       `hcl:"move_limit,optional"`
	Goals        []HCLGoal `hcl:"goal,block"`
}

// HCLGoal is a goal block.
type HCLGoal struct {
	Type   string `hcl:"type"`
	Amount int    `hcl:"amount"`
}

// ParseHCL parses an HCL level file. filename is used for diagnostics
// and must end in .hcl.
func ParseHCL(filename string, data []byte) (Level, error) {
	var hl HCLLevel
	if err := hclsimple.Decode(filename, data, nil, &hl); err != nil {
		return Level{}, fmt.Errorf("hcl decode: %w", err)
	}

	level := Level{
		ID:           hl.ID,
		Name:         hl.Name,
		GridLength:   hl.GridLength,
		ColorCount:   hl.ColorCount,
		RandomStart:  hl.RandomStart,
		StartingGrid: hl.StartingGrid,
		MoveLimit:    hl.MoveLimit,
	}
	if len(level.StartingGrid) == 0 && len(hl.Rows) > 0 {
		level.StartingGrid = expandRows(hl.Rows)
	}

	for _, g := range hl.Goals {
		level.Goals = append(level.Goals, Goal{Type: g.Type, Amount: g.Amount})
	}

	return level, nil
}
