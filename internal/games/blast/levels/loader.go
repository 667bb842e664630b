// Package levels provides level loading for Tile Blast.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast/levels/builtin"
	"github.com/vovakirdan/tile-blast/internal/games/blast/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Spec      core.GridSpec
	Goals     []core.GoalDecl
	MoveLimit int // 0 = unlimited
	FilePath  string
}

// LevelSpec returns what the core needs to start this level.
func (l Level) LevelSpec() core.LevelSpec {
	return core.LevelSpec{Grid: l.Spec, Goals: l.Goals}
}

// Title returns the name, or the ID if the level has no name.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// fromFormat converts a parsed file into a Level.
func fromFormat(parsed formats.Level, filePath string) Level {
	goals := make([]core.GoalDecl, 0, len(parsed.Goals))
	for _, g := range parsed.Goals {
		goals = append(goals, core.GoalDecl{Type: g.Type, Amount: g.Amount})
	}
	return Level{
		ID:   parsed.ID,
		Name: parsed.Name,
		Spec: core.GridSpec{
			Length:      parsed.GridLength,
			PaletteSize: parsed.ColorCount,
			Random:      parsed.RandomStart,
			Layout:      parsed.StartingGrid,
		},
		Goals:     goals,
		MoveLimit: parsed.MoveLimit,
		FilePath:  filePath,
	}
}

// Loader loads levels from a file system.
type Loader struct {
	Root string // Display name of the source
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over any file system.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{Root: name, fsys: fsys}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	return NewFSLoader(builtin.FS, "builtin")
}

// Report is the outcome of checking one level file.
type Report struct {
	Path   string
	Level  Level
	Errors []error // Parse failure or validation issues
	Fatal  bool    // The level cannot be played
}

// Check parses and validates every level file without skipping anything.
// Reports are sorted by path.
func (l *Loader) Check() ([]Report, error) {
	var reports []Report
	seen := make(map[string]string)

	err := l.walk(func(p string) {
		r := Report{Path: p}
		level, err := l.LoadFile(p)
		if err != nil {
			r.Errors = []error{err}
			r.Fatal = true
			reports = append(reports, r)
			return
		}
		r.Level = level
		r.Errors = Validate(level)
		r.Fatal = HasFatal(r.Errors)
		if first, dup := seen[level.ID]; dup {
			r.Errors = append(r.Errors, fmt.Errorf("duplicate level id %q, first defined in %s", level.ID, first))
			r.Fatal = true
		} else {
			seen[level.ID] = p
		}
		reports = append(reports, r)
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})
	return reports, nil
}

// LoadAll loads every playable level file.
// Files that fail to parse or cannot be played are skipped; use Check to
// see why. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	reports, err := l.Check()
	if err != nil {
		return nil, err
	}

	var levels []Level
	for _, r := range reports {
		if r.Fatal {
			continue
		}
		levels = append(levels, r.Level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file, path relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := formats.Parse(p, data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return fromFormat(parsed, path.Join(l.Root, p)), nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// walk calls fn for every level file under the root.
func (l *Loader) walk(fn func(p string)) error {
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}
		fn(p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
