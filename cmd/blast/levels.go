package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-blast/internal/games/blast/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `List the playable campaign levels in play order.

Levels come from the built-in set unless --levels points at a directory
of .yaml, .yml or .hcl level files.

Examples:
  blast levels
  blast levels --levels ./my-levels
  blast levels check --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate level files",
	Long: `Parse and validate every level file and report problems.

Warnings (unknown color or goal codes) leave a level playable.
Errors skip the level and make the command exit with status 1.`,
	Args: cobra.NoArgs,
	Run:  runLevelsCheck,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one level",
	Long: `Print a level's goals, move limit and starting grid.

Examples:
  blast levels show lvl01`,
	Args: cobra.ExactArgs(1),
	Run:  runLevelsShow,
}

func init() {
	levelsCmd.AddCommand(levelsCheckCmd)
	levelsCmd.AddCommand(levelsShowCmd)
}

func loaderOrBuiltin() *levels.Loader {
	if l := levelLoader(); l != nil {
		return l
	}
	return levels.Builtin()
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := loaderOrBuiltin()

	lvls, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Printf("No playable levels in %s.\n", loader.Root)
		fmt.Println("Run 'blast levels check' to see why files were skipped.")
		return
	}

	fmt.Printf("Levels (%s):\n", loader.Root)
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-24s  %-5s  %-5s  %s\n", "#", "ID", "Title", "Grid", "Moves", "Goals")
	fmt.Printf("  %-3s  %-16s  %-24s  %-5s  %-5s  %s\n", "-", "--", "-----", "----", "-----", "-----")

	for i, l := range lvls {
		moves := "-"
		if l.MoveLimit > 0 {
			moves = fmt.Sprint(l.MoveLimit)
		}
		grid := fmt.Sprintf("%dx%d", l.Spec.Length, l.Spec.Length)
		fmt.Printf("  %-3d  %-16s  %-24s  %-5s  %-5s  %d\n", i+1, l.ID, l.Title(), grid, moves, len(l.Goals))
	}
}

func runLevelsCheck(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	loader := loaderOrBuiltin()
	reports, err := loader.Check()
	if err != nil {
		logger.Error("reading levels", "root", loader.Root, "err", err)
		os.Exit(1)
	}

	fatal := 0
	for _, r := range reports {
		if len(r.Errors) == 0 {
			logger.Info("ok", "file", r.Path, "id", r.Level.ID)
			continue
		}
		for _, e := range r.Errors {
			if r.Fatal {
				logger.Error("invalid level", "file", r.Path, "err", e)
			} else {
				logger.Warn("level issue", "file", r.Path, "err", e)
			}
		}
		if r.Fatal {
			fatal++
		}
	}

	fmt.Printf("%d files checked, %d invalid\n", len(reports), fatal)
	if fatal > 0 {
		os.Exit(1)
	}
}

func runLevelsShow(_ *cobra.Command, args []string) {
	loader := loaderOrBuiltin()

	l, err := loader.LoadByID(args[0])
	if err != nil {
		ids, _ := loader.ListIDs()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if len(ids) > 0 {
			fmt.Fprintf(os.Stderr, "Known levels: %s\n", strings.Join(ids, ", "))
		}
		os.Exit(1)
	}

	fmt.Printf("%s (%s)\n", l.Title(), l.ID)
	fmt.Printf("File: %s\n", l.FilePath)
	if l.MoveLimit > 0 {
		fmt.Printf("Moves: %d\n", l.MoveLimit)
	} else {
		fmt.Println("Moves: unlimited")
	}
	for _, g := range l.Goals {
		fmt.Printf("Goal: collect %d %s\n", g.Amount, g.Type)
	}
	fmt.Println()

	if l.Spec.Random {
		fmt.Printf("Random %dx%d grid with %d colors\n", l.Spec.Length, l.Spec.Length, l.Spec.PaletteSize)
		return
	}
	for row := 0; row < l.Spec.Length; row++ {
		start := row * l.Spec.Length
		end := min(start+l.Spec.Length, len(l.Spec.Layout))
		if start >= end {
			break
		}
		fmt.Println("  " + strings.Join(l.Spec.Layout[start:end], " "))
	}
}
