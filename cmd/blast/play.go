package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-blast/internal/games/blast"
	"github.com/vovakirdan/tile-blast/internal/platform/tui"
	"github.com/vovakirdan/tile-blast/internal/registry"
	"github.com/vovakirdan/tile-blast/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the campaign (blast) or endless mode (blast_endless).

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Enter/Space      - Tap the tile under the cursor
  Mouse click      - Tap a tile
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  blast play
  blast play --level 3
  blast play blast_endless --difficulty hard
  blast play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Campaign level to start at (1-indexed)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := blast.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blast list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	if err := configureGames(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	blast.SetStartLevel(flagStartLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
