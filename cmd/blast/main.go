// blast is a tile-matching puzzle game for the terminal.
//
// Usage:
//
//	blast                    - Start the interactive menu
//	blast play [mode]        - Play the campaign or endless mode directly
//	blast list               - List available game modes
//	blast levels             - List campaign levels
//	blast levels check       - Validate level files
//	blast levels show <id>   - Show one level
//	blast scores [mode]      - Show high scores and level records
//	blast serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible grids
//	--db <path>          - Set database path (default: ~/.tile-blast/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--levels <dir>       - Load campaign levels from a directory
//	--difficulty <name>  - Endless difficulty preset
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tile-blast/internal/games/blast"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blast",
	Short: "Tile Blast - tap groups of matching tiles in your terminal",
	Long: `Tile Blast is a terminal puzzle game. Tap a group of two or more
touching tiles of the same color to clear it, and meet every level goal
before you run out of moves.

Available commands:
  menu     - Interactive menu (default)
  play     - Play the campaign or endless mode directly
  list     - Show the available game modes
  levels   - List and check campaign levels
  scores   - View high scores and level records
  serve    - Start SSH server for remote play

Examples:
  blast
  blast play
  blast play blast_endless --difficulty hard
  blast levels check --levels ./my-levels
  blast serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tile-blast/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Endless difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
