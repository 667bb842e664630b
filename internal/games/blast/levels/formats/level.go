// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"path"
	"strings"
)

// Goal is a goal declaration as written in a level file.
type Goal struct {
	Type   string
	Amount int
}

// Level is a parsed level file. Codes are kept as written; resolving them
// to colors and goal types is up to the caller.
type Level struct {
	ID           string
	Name         string
	GridLength   int
	ColorCount   int
	RandomStart  bool
	StartingGrid []string // Top row first, one code per cell
	Goals        []Goal
	MoveLimit    int
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".hcl"}
}

// Parse routes to the parser for the file extension of name.
func Parse(name string, data []byte) (Level, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(name, data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

// expandRows turns top-first row strings into one code per cell.
func expandRows(rows []string) []string {
	var codes []string
	for _, row := range rows {
		for _, r := range strings.TrimSpace(row) {
			if r == ' ' {
				continue
			}
			codes = append(codes, string(r))
		}
	}
	return codes
}
